package fetch

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Func mengambil isi URL. Dipakai sebagai dependency agar bisa diganti di test.
type Func func(url string) ([]byte, error)

// Get melakukan satu GET dengan batas waktu, tanpa retry.
func Get(timeout time.Duration) Func {
	return func(url string) ([]byte, error) {
		agent := fiber.Get(url)
		agent.Timeout(timeout)
		agent.MaxRedirectsCount(5)

		code, body, errs := agent.Bytes()
		if len(errs) > 0 {
			return nil, fmt.Errorf("gagal mengunduh %s: %w", url, errors.Join(errs...))
		}
		if code != fiber.StatusOK {
			return nil, fmt.Errorf("gagal mengunduh %s: status %d", url, code)
		}
		return body, nil
	}
}
