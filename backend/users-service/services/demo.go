package services

import (
	"strconv"

	"projectflow/backend/users-service/models"
)

// DemoAccounts work without a database and receive fixed tokens.
func DemoAccounts() []models.DemoAccount {
	return []models.DemoAccount{
		demoAccount(1, "admin", "Admin"),
		demoAccount(2, "planner", "Planner"),
		demoAccount(3, "viewer", "Viewer"),
	}
}

func demoAccount(id int, key, roleName string) models.DemoAccount {
	email := key + "@projectflow.com"
	return models.DemoAccount{
		Email:    email,
		Password: key + "123",
		Token:    "fake-" + key + "-token",
		User: models.User{
			ID:        strconv.Itoa(id),
			Email:     email,
			FirstName: roleName,
			LastName:  "User",
			Role:      models.Role{ID: id, Name: roleName, Level: id},
		},
	}
}

// registrationRoles maps the roles offered on sign-up to their level.
var registrationRoles = map[string]models.Role{
	"admin":           {ID: 1, Name: "admin", Level: 1},
	"project-manager": {ID: 4, Name: "project-manager", Level: 2},
	"team-lead":       {ID: 5, Name: "team-lead", Level: 2},
	"developer":       {ID: 6, Name: "developer", Level: 3},
	"designer":        {ID: 7, Name: "designer", Level: 3},
}

const defaultRegistrationRole = "developer"
