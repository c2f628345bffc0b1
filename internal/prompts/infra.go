package prompts

import (
	"context"
	"database/sql"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) ListAll(ctx context.Context) ([]*Prompt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT flow, key, text
		FROM assistant_prompts
		ORDER BY flow, key
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Prompt
	for rows.Next() {
		var p Prompt
		if err := rows.Scan(&p.Flow, &p.Key, &p.Text); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *repo) Upsert(ctx context.Context, flow, key, text string) (*Prompt, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO assistant_prompts (flow, key, text)
		VALUES ($1, $2, $3)
		ON CONFLICT (flow, key) DO UPDATE SET text = EXCLUDED.text
		RETURNING flow, key, text
	`, flow, key, text)

	var p Prompt
	if err := row.Scan(&p.Flow, &p.Key, &p.Text); err != nil {
		return nil, err
	}

	return &p, nil
}
