package seeder

import (
	"context"
	"fmt"

	"github.com/Barshamagar123/skill-matcher/internal/database"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/google/uuid"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := jobsShape.check(ctx, db); err != nil {
		return err
	}

	var employerID uuid.UUID
	row := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, DemoEmployerEmail)
	if err := row.Scan(&employerID); err != nil {
		return fmt.Errorf("find demo employer: %w", err)
	}

	var existing int
	if err := db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs WHERE employer_id = $1`, employerID).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	items := []struct {
		Title       string
		Description string
		Type        job.Type
		Location    string
		SalaryMin   int
		SalaryMax   int
		Experience  string
		Skills      skillset.Set
	}{
		{
			Title:       "Frontend Developer",
			Description: "Build responsive interfaces with React and TypeScript for our hiring platform.",
			Type:        job.TypeFullTime,
			Location:    "Kathmandu",
			SalaryMin:   40000,
			SalaryMax:   70000,
			Experience:  "Entry",
			Skills:      skillset.New("JavaScript", "React", "TypeScript", "CSS"),
		},
		{
			Title:       "Backend Intern",
			Description: "Help maintain REST APIs and PostgreSQL schemas under senior guidance.",
			Type:        job.TypeInternship,
			Location:    "Remote",
			SalaryMin:   10000,
			SalaryMax:   15000,
			Experience:  "None",
			Skills:      skillset.New("Node.js", "SQL"),
		},
		{
			Title:       "Data Analyst",
			Description: "Turn application data into dashboards and weekly reports for the product team.",
			Type:        job.TypePartTime,
			Location:    "Pokhara",
			SalaryMin:   25000,
			SalaryMax:   35000,
			Experience:  "Entry",
			Skills:      skillset.New("Python", "SQL", "Excel"),
		},
		{
			Title:       "DevOps Engineer",
			Description: "Operate CI pipelines, Docker images and cloud infrastructure for production services.",
			Type:        job.TypeContract,
			Location:    "Lalitpur",
			SalaryMin:   60000,
			SalaryMax:   90000,
			Experience:  "Mid",
			Skills:      skillset.New("Docker", "Kubernetes", "AWS", "Linux"),
		},
	}

	return database.InTx(ctx, db, func(q database.Querier) error {
		for _, it := range items {
			_, err := q.Exec(ctx,
				`INSERT INTO jobs (id, employer_id, title, description, job_type, location,
				 salary_min, salary_max, experience_req, required_skills, is_active)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)`,
				uuid.New(), employerID, it.Title, it.Description, string(it.Type), it.Location,
				it.SalaryMin, it.SalaryMax, it.Experience, skillset.Encode(it.Skills),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
