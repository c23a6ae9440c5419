package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form       FormRepo
	Submission SubmissionRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:       NewFormRepo(db),
		Submission: NewSubmissionRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:       r.Form.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
