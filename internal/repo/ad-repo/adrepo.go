package adrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context) ([]domain.Ad, error) {
	query := `
        SELECT id, title, reward, duration, url
        FROM ads
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list ads", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		var ad domain.Ad
		err := rows.Scan(&ad.ID, &ad.Title, &ad.Reward, &ad.Duration, &ad.URL)
		if err != nil {
			zap.L().Error("can't scan ad row", zap.Error(err))
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Ad, error) {
	query := `
        SELECT id, title, reward, duration, url
        FROM ads
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var ad domain.Ad
	err := row.Scan(&ad.ID, &ad.Title, &ad.Reward, &ad.Duration, &ad.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ad", zap.Error(err))
		return nil, err
	}
	return &ad, nil
}

func (r *Repository) Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	query := `
		INSERT INTO ads (title, reward, duration, url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, ad.Title, ad.Reward, ad.Duration, ad.URL).Scan(&ad.ID)
	if err != nil {
		zap.L().Error("can't save ad", zap.Error(err))
		return nil, err
	}
	return ad, nil
}

func (r *Repository) Update(ctx context.Context, ad *domain.Ad) (bool, error) {
	query := `
		UPDATE ads
		SET title = $1, reward = $2, duration = $3, url = $4
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, ad.Title, ad.Reward, ad.Duration, ad.URL, ad.ID)
	if err != nil {
		zap.L().Error("can't update ad", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	query := `
		DELETE FROM ads
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete ad", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
