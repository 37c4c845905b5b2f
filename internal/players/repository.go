package players

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for players.
type Repository interface {
	ListAll(ctx context.Context) ([]Player, error)
	ListByUser(ctx context.Context, userID int64) ([]Player, error)
	FindByID(ctx context.Context, id int64) (*Player, error)
	Insert(ctx context.Context, player Player) (*Player, error)
	Update(ctx context.Context, id int64, req UpdatePlayerRequest) error
	Delete(ctx context.Context, id int64) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const playerColumns = `id, first_name, last_name, team, position, user_id`

func collectPlayers(rows pgx.Rows) ([]Player, error) {
	defer rows.Close()
	var all []Player
	for rows.Next() {
		var player Player
		if err := rows.Scan(&player.ID, &player.FirstName, &player.LastName, &player.Team, &player.Position, &player.UserID); err != nil {
			return nil, err
		}
		all = append(all, player)
	}
	return all, rows.Err()
}

// ListAll returns every player ordered by id.
func (r *PGRepository) ListAll(ctx context.Context) ([]Player, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+playerColumns+` FROM players ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectPlayers(rows)
}

// ListByUser returns every player owned by the user.
func (r *PGRepository) ListByUser(ctx context.Context, userID int64) ([]Player, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+playerColumns+` FROM players WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	return collectPlayers(rows)
}

// FindByID fetches a player by id.
func (r *PGRepository) FindByID(ctx context.Context, id int64) (*Player, error) {
	var player Player
	err := r.pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id).
		Scan(&player.ID, &player.FirstName, &player.LastName, &player.Team, &player.Position, &player.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &player, nil
}

// Insert persists a new player and returns the stored row.
func (r *PGRepository) Insert(ctx context.Context, player Player) (*Player, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO players (first_name, last_name, team, position, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		player.FirstName, player.LastName, player.Team, player.Position, player.UserID,
	).Scan(&player.ID)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Update writes the fields present in the request.
func (r *PGRepository) Update(ctx context.Context, id int64, req UpdatePlayerRequest) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE players
		 SET first_name = COALESCE($2, first_name),
		     last_name = COALESCE($3, last_name),
		     team = COALESCE($4, team),
		     position = COALESCE($5, position)
		 WHERE id = $1`,
		id, req.FirstName, req.LastName, req.Team, req.Position)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a player.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
