package models

import "time"

type Role struct {
	ID    int    `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Level int    `json:"level" bson:"level"`
}

type User struct {
	ID                 string    `json:"id" bson:"_id"`
	Email              string    `json:"email" bson:"email"`
	FirstName          string    `json:"first_name" bson:"firstName"`
	LastName           string    `json:"last_name" bson:"lastName"`
	Company            string    `json:"company,omitempty" bson:"company,omitempty"`
	Role               Role      `json:"role" bson:"role"`
	Password           string    `json:"-" bson:"password"`
	VerificationCode   string    `json:"-" bson:"verificationCode"`
	VerificationExpiry time.Time `json:"-" bson:"verificationExpiry"`
	CreatedAt          time.Time `json:"-" bson:"createdAt"`
}

// DemoAccount is one of the built-in logins that work without registration.
type DemoAccount struct {
	Email    string
	Password string
	Token    string
	User     User
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginData struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type LoginResponse struct {
	Data     LoginData `json:"data"`
	Redirect string    `json:"redirect"`
}

type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	Company         string `json:"company"`
}

type RegisterResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// Session mirrors the two values the dashboard keeps per login.
type Session struct {
	AccessToken string `json:"access_token"`
	UserData    User   `json:"user_data"`
}
