package ports

import "github.com/aalvaropc/advent/internal/domain"

// RunHistory persists finished run reports for later comparison.
type RunHistory interface {
	SaveRun(run domain.RunReport) (id string, err error)
}
