package study

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sghaida/poo/holder"
)

var (
	// ErrNilDirectory is returned by NewRegistrar when no directory is given.
	ErrNilDirectory = errors.New("study: nil directory")

	// ErrDirectoryPanic is returned if a Directory implementation panics in Store.
	ErrDirectoryPanic = errors.New("study: panic during Store")
)

// Registrar registers users. It only coordinates: validate checks the input,
// the Directory stores it and report logs failures.
type Registrar struct {
	dir    Directory
	logger *log.Logger
	newID  func() uuid.UUID
}

// NewRegistrar returns a Registrar storing into dir. logger may be nil.
func NewRegistrar(dir Directory, logger *log.Logger) (*Registrar, error) {
	if dir == nil {
		return nil, ErrNilDirectory
	}
	return &Registrar{dir: dir, logger: logger, newID: uuid.New}, nil
}

// Register validates name and age and stores a new Record.
//
// name must be a string and age an integer (booleans are not integers);
// otherwise the returned error matches holder.ErrInvalidArgument and nothing is
// stored.
func (r *Registrar) Register(name, age any) (Record, error) {
	n, a, err := validate(name, age)
	if err != nil {
		r.report(err)
		return Record{}, err
	}

	rec := Record{ID: r.newID(), Name: n, Age: a}
	if err := r.store(rec); err != nil {
		r.report(err)
		return Record{}, err
	}
	if r.logger != nil {
		r.logger.Info("user registered", "id", rec.ID, "name", rec.Name, "age", rec.Age)
	}
	return rec, nil
}

func validate(name, age any) (string, int, error) {
	n, ok := name.(string)
	if !ok {
		return "", 0, holder.Invalid(name, "string")
	}
	a, err := holder.AsInt(age)
	if err != nil {
		return "", 0, err
	}
	return n, a, nil
}

func (r *Registrar) store(rec Record) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrDirectoryPanic, p)
		}
	}()
	return r.dir.Store(rec)
}

func (r *Registrar) report(err error) {
	if r.logger != nil {
		r.logger.Error("registration rejected", "error", err)
	}
}
