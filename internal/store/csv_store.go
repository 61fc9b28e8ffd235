package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/askabhijit/clarity-bookings/internal/domain"
)

type BookingStore interface {
	Append(ctx context.Context, b *domain.Booking) error
	ReadAll(ctx context.Context) ([]domain.Booking, error)
}

// header is the fixed column order of the booking log. One row per record,
// optional fields encoded as empty strings.
var header = []string{"submitted_at", "name", "date_of_birth", "gender", "email", "contact_handle", "message"}

// CSVStore appends bookings to a single CSV file, writing the header row
// the first time the file is created. A mutex serializes the existence
// check and the append so concurrent requests in this process cannot race
// a double header or interleave rows. Multi-process deployments still need
// an external serializer in front of the file.
type CSVStore struct {
	mu   sync.Mutex
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Append(ctx context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, statErr := os.Stat(s.path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &domain.StorageError{Path: s.path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return &domain.StorageError{Path: s.path, Err: err}
		}
	}
	if err := w.Write(row(b)); err != nil {
		return &domain.StorageError{Path: s.path, Err: err}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &domain.StorageError{Path: s.path, Err: err}
	}
	return nil
}

// ReadAll returns every record in the log in append order. A missing log
// is an empty log.
func (s *CSVStore) ReadAll(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Booking{}, nil
		}
		return nil, &domain.StorageError{Path: s.path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	bookings := []domain.Booking{}
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.StorageError{Path: s.path, Err: err}
		}
		if first {
			first = false
			continue // header row
		}

		b, err := fromRow(rec)
		if err != nil {
			return nil, &domain.StorageError{Path: s.path, Err: err}
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func row(b *domain.Booking) []string {
	return []string{
		b.SubmittedAt.Format(time.RFC3339),
		b.Name,
		b.DateOfBirth,
		b.Gender,
		b.Email,
		b.ContactHandle,
		b.Message,
	}
}

func fromRow(rec []string) (domain.Booking, error) {
	submittedAt, err := time.Parse(time.RFC3339, rec[0])
	if err != nil {
		return domain.Booking{}, fmt.Errorf("bad submitted_at %q: %w", rec[0], err)
	}
	return domain.Booking{
		SubmittedAt:   submittedAt,
		Name:          rec[1],
		DateOfBirth:   rec[2],
		Gender:        rec[3],
		Email:         rec[4],
		ContactHandle: rec[5],
		Message:       rec[6],
	}, nil
}

var _ BookingStore = (*CSVStore)(nil)
