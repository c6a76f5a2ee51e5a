package repositories

import (
	"context"
	"fmt"

	"projectflow/backend/logging"
	"projectflow/backend/reports-service/models"

	"github.com/gocql/gocql"
)

// All reports share one partition so the clustering order gives "most recent" for free.
const reportLogBucket = "reports"

type CassandraReportRepository struct {
	session *gocql.Session
}

// NewCassandraReportRepository creates the keyspace if needed and opens a session on it.
func NewCassandraReportRepository(host, keyspace string) (*CassandraReportRepository, error) {
	cluster := gocql.NewCluster(host)
	cluster.Keyspace = "system"
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cassandra at %s: %w", host, err)
	}

	err = session.Query(fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s
         WITH replication = {
             'class': 'SimpleStrategy',
             'replication_factor': 1
         }`, keyspace)).Exec()
	session.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to create keyspace %s: %w", keyspace, err)
	}

	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.One
	session, err = cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to keyspace %s: %w", keyspace, err)
	}

	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Connected to Cassandra keyspace %s.", keyspace)
	return &CassandraReportRepository{session: session}, nil
}

func (r *CassandraReportRepository) CloseSession() {
	r.session.Close()
	logging.Logger.Info("Event ID: DB_SESSION_CLOSED, Description: Cassandra session closed.")
}

func (r *CassandraReportRepository) CreateTable(ctx context.Context) error {
	err := r.session.Query(
		`CREATE TABLE IF NOT EXISTS report_log (
			bucket TEXT,
			generated_at TIMESTAMP,
			id TEXT,
			name TEXT,
			type TEXT,
			template_id TEXT,
			format TEXT,
			date_from TEXT,
			date_to TEXT,
			projects LIST<TEXT>,
			teams LIST<TEXT>,
			generated_date TEXT,
			status TEXT,
			size TEXT,
			PRIMARY KEY ((bucket), generated_at, id)
		) WITH CLUSTERING ORDER BY (generated_at DESC, id ASC)`).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("failed to create report_log table: %w", err)
	}
	return nil
}

// SeedIfEmpty writes the shipped report log into an empty table.
func (r *CassandraReportRepository) SeedIfEmpty(ctx context.Context, seed []models.Report) error {
	existing, err := r.GetRecent(ctx, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range seed {
		if err := r.Create(ctx, &seed[i]); err != nil {
			return err
		}
	}
	logging.Logger.Infof("Event ID: DB_SEEDED, Description: Seeded %d reports", len(seed))
	return nil
}

func (r *CassandraReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.ID == "" {
		report.ID = gocql.TimeUUID().String()
	}

	err := r.session.Query(
		`INSERT INTO report_log (bucket, generated_at, id, name, type, template_id, format, date_from, date_to, projects, teams, generated_date, status, size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reportLogBucket, report.GeneratedAt, report.ID, report.Name, report.Type, report.TemplateID, report.Format,
		report.From, report.To, report.Projects, report.Teams, report.GeneratedDate, string(report.Status), report.Size,
	).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("failed to insert report %s: %w", report.Name, err)
	}
	return nil
}

func (r *CassandraReportRepository) GetRecent(ctx context.Context, limit int) ([]models.Report, error) {
	query := `SELECT id, name, type, template_id, format, date_from, date_to, projects, teams, generated_date, generated_at, status, size
			  FROM report_log WHERE bucket = ?`
	args := []interface{}{reportLogBucket}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	iter := r.session.Query(query, args...).WithContext(ctx).Iter()
	reports := []models.Report{}
	var report models.Report
	var status string
	for iter.Scan(&report.ID, &report.Name, &report.Type, &report.TemplateID, &report.Format, &report.From, &report.To,
		&report.Projects, &report.Teams, &report.GeneratedDate, &report.GeneratedAt, &status, &report.Size) {
		report.Status = models.ReportStatus(status)
		if report.Projects == nil {
			report.Projects = []string{}
		}
		if report.Teams == nil {
			report.Teams = []string{}
		}
		reports = append(reports, report)
		report = models.Report{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to read report log: %w", err)
	}
	return reports, nil
}
