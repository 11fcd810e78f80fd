package postgres

import (
	"context"
	"errors"
	"time"

	"resume-portal-backend/internal/domain"
	"resume-portal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const pgUniqueViolation = "23505"

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, first_name, last_name, password, email_id, phone_number, user_type, created_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING user_id`
	err := r.db.QueryRow(ctx, query,
		user.Username, user.FirstName, user.LastName, user.Password,
		user.EmailID, user.PhoneNumber, user.UserType, time.Now(),
	).Scan(&user.UserID)

	if err != nil {
		// The pre-insert existence check can race with a concurrent
		// registration; the unique constraints are the backstop.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if pgErr.ConstraintName == "users_username_key" {
				return apperror.Conflict("Username already taken")
			}
			return apperror.Conflict("Email already registered")
		}
		return err
	}
	return nil
}

const userColumns = `user_id, username, first_name, last_name, password, email_id, phone_number, user_type, created_date`

func (r *userRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID, &user.Username, &user.FirstName, &user.LastName,
		&user.Password, &user.EmailID, &user.PhoneNumber, &user.UserType,
		&user.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email_id = $2 LIMIT 1`
	return r.scanUser(r.db.QueryRow(ctx, query, username, email))
}

func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&count)
	return count > 0, err
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email_id = $1`, email).Scan(&count)
	return count > 0, err
}

// FetchWithResumeCounts joins accounts to the resumes whose personal
// information carries the same email address. Resumes are not owned by a
// user row directly; the email is the only link the schema has.
func (r *userRepo) FetchWithResumeCounts(ctx context.Context) ([]domain.UserSummary, error) {
	query := `
		SELECT
			u.user_id, u.username, u.first_name, u.last_name,
			u.email_id, u.phone_number, u.created_date,
			COUNT(r.resume_id) AS resume_count
		FROM users u
		LEFT JOIN personal_information p ON p.email = u.email_id
		LEFT JOIN resumes r ON r.resume_id = p.resume_id
		GROUP BY u.user_id, u.username, u.first_name, u.last_name, u.email_id, u.phone_number, u.created_date
		ORDER BY u.created_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserSummary
	for rows.Next() {
		var u domain.UserSummary
		var created *time.Time
		if err := rows.Scan(&u.UserID, &u.Username, &u.FirstName, &u.LastName,
			&u.Email, &u.Phone, &created, &u.ResumeCount); err != nil {
			return nil, err
		}
		u.Name = u.FirstName + " " + u.LastName
		u.CreatedDate = fmtTimestamp(created)
		u.Status = "Active"
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) FetchResumeRefsByEmail(ctx context.Context, email string) ([]domain.UserResumeRef, error) {
	query := `
		SELECT r.resume_id, r.resume_title, r.created_date
		FROM resumes r
		INNER JOIN personal_information p ON r.resume_id = p.resume_id
		WHERE p.email = $1`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []domain.UserResumeRef
	for rows.Next() {
		var ref domain.UserResumeRef
		var created *time.Time
		if err := rows.Scan(&ref.ID, &ref.Title, &created); err != nil {
			return nil, err
		}
		ref.CreatedDate = fmtTimestamp(created)
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
