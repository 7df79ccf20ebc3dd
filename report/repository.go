package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/buntdb"
)

var (
	ErrReportExists   = errors.New("a report already exists for this day")
	ErrReportNotFound = errors.New("report not found")
)

type Repository interface {
	Create(user string, r Report) error
	Update(user string, r Report) error
	Get(user string, day Date) (*Report, error)
	Delete(user string, day Date) error
	FindByDateRange(user string, from, to Date) ([]Report, error)
}

func NewRepository(db *buntdb.DB) Repository {
	return &repository{db: db}
}

type repository struct {
	db *buntdb.DB
}

func reportKey(user string, day Date) string {
	return fmt.Sprintf("report:%s:%s", user, day)
}

// Create persists a new report. The existence check and the write happen in
// the same transaction, so two concurrent creations for one day cannot both
// succeed.
func (s *repository) Create(user string, r Report) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return s.db.Update(func(tx *buntdb.Tx) error {
		key := reportKey(user, r.Day)
		if _, err := tx.Get(key); err == nil {
			return ErrReportExists
		} else if !errors.Is(err, buntdb.ErrNotFound) {
			return err
		}
		return setReport(tx, key, r)
	})
}

func (s *repository) Update(user string, r Report) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return s.db.Update(func(tx *buntdb.Tx) error {
		key := reportKey(user, r.Day)
		if _, err := tx.Get(key); errors.Is(err, buntdb.ErrNotFound) {
			return ErrReportNotFound
		} else if err != nil {
			return err
		}
		return setReport(tx, key, r)
	})
}

func setReport(tx *buntdb.Tx, key string, r Report) error {
	bs, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, _, err = tx.Set(key, string(bs), nil)
	return err
}

func (s *repository) Get(user string, day Date) (*Report, error) {
	var r *Report
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(reportKey(user, day))
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil
		} else if err != nil {
			return err
		}
		var rep Report
		if err := json.Unmarshal([]byte(v), &rep); err != nil {
			return err
		}
		r = &rep
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *repository) Delete(user string, day Date) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(reportKey(user, day))
		if errors.Is(err, buntdb.ErrNotFound) {
			return ErrReportNotFound
		}
		return err
	})
}

// FindByDateRange returns the user's reports with day between the inclusive
// bounds, newest first. Day strings sort chronologically, so a descending
// key walk already yields the listing order. An inverted range is simply
// empty.
func (s *repository) FindByDateRange(user string, from, to Date) ([]Report, error) {
	if from > to {
		return nil, nil
	}
	prefix := fmt.Sprintf("report:%s:", user)
	var reports []Report
	var iterErr error
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.DescendKeys(prefix+"*", func(key, value string) bool {
			day := Date(strings.TrimPrefix(key, prefix))
			if day > to {
				return true
			}
			if day < from {
				return false
			}
			var r Report
			if err := json.Unmarshal([]byte(value), &r); err != nil {
				iterErr = err
				return false
			}
			reports = append(reports, r)
			return true
		})
	})
	if err != nil {
		return nil, err
	}
	if iterErr != nil {
		return nil, iterErr
	}
	return reports, nil
}
