package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sghaida/poo/holder"
	"github.com/sghaida/poo/internal/config"
	"github.com/sghaida/poo/study"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("load config", "error", err)
	}
	logger := cfg.Logger(os.Stderr)

	if err := run(logger); err != nil {
		logger.Fatal("walkthrough failed", "error", err)
	}
}

// run executes every walkthrough, stopping at the first unexpected error.
func run(logger *log.Logger) error {
	steps := []struct {
		name string
		fn   func(*log.Logger) error
	}{
		{"class attributes", classAttributes},
		{"encapsulation", encapsulation},
		{"visibility", visibility},
		{"registration", registration},
	}
	for _, s := range steps {
		l := logger.WithPrefix(s.name)
		l.Info("--- start ---")
		if err := s.fn(l); err != nil {
			return err
		}
	}
	logger.Info("--- end of study ---")
	return nil
}

// errUnexpectedSuccess is returned when a walkthrough step that must be
// rejected goes through.
var errUnexpectedSuccess = errors.New("poo: invalid input was accepted")

// expectInvalid returns nil only if err is an invalid-argument rejection.
func expectInvalid(err error) error {
	switch {
	case err == nil:
		return errUnexpectedSuccess
	case errors.Is(err, holder.ErrInvalidArgument):
		return nil
	default:
		return err
	}
}

func classAttributes(logger *log.Logger) error {
	counter := holder.NewCounter()

	first, err := study.NewObject(counter, "My First Object", 101)
	if err != nil {
		return err
	}
	logger.Info("object created", "object", first, "instances", counter.Load())
	second, err := study.NewObject(counter, "Another Instance", 202)
	if err != nil {
		return err
	}
	logger.Info("object created", "object", second, "instances", counter.Load())

	logger.Info(first.Greeting())
	logger.Info(second.Greeting())

	first.AddItem("New Item Alpha")
	first.AddItem(999)
	second.AddItem("New Item Beta")
	logger.Info("items", "first", first.Items(), "second", second.Items())

	first.SetText("Changed text for Object 1")
	logger.Info("text", "first", first.Text(), "second", second.Text())

	logger.Info(first.Info())
	logger.Info(second.Info())
	return nil
}

func encapsulation(logger *log.Logger) error {
	counter := holder.NewCounter()

	h, err := holder.FromAny(counter, 10, holder.WithLogger(logger))
	if err != nil {
		logger.Warn("creation failed, falling back to zero", "error", err)
		h = holder.New(counter, 0, holder.WithLogger(logger))
	}
	logger.Info("value from getter", "value", h.Get(), "instances", counter.Load())

	h.Set(20)
	logger.Info("value after valid set", "value", h.Get())

	err = h.SetAny("not an int")
	if err := expectInvalid(err); err != nil {
		return err
	}
	logger.Info("caught expected error", "error", err)
	logger.Info("final value", "value", h.Get())

	_, err = holder.FromAny(counter, "wrong type")
	if err := expectInvalid(err); err != nil {
		return err
	}
	logger.Info("caught expected error during creation", "error", err)
	logger.Info("instances", "count", counter.Load())
	return nil
}

func visibility(logger *log.Logger) error {
	v := study.NewVisibility()
	logger.Info("public attribute", "value", v.Public)

	logger.Info("internal attribute", "value", v.Internal())
	v.SetInternal("Changed internal use attribute")
	logger.Info("internal attribute after set", "value", v.Internal())

	logger.Info("secret attribute", "value", v.Secret())
	v.SetSecret("New private value set by setter")
	logger.Info("secret attribute after set", "value", v.Secret())

	result, secret := v.UsePrivate()
	logger.Info("unexported method", "result", result, "secret", secret)
	return nil
}

func registration(logger *log.Logger) error {
	dir := study.NewMapDirectory()
	r, err := study.NewRegistrar(dir, logger)
	if err != nil {
		return err
	}

	if _, err := r.Register("Victor", 28); err != nil {
		return err
	}
	// rejected and reported by the registrar
	_, err = r.Register("Victor", "twenty-eight")
	if err := expectInvalid(err); err != nil {
		return err
	}

	logger.Info("directory", "records", dir.Len())
	return nil
}
