package usecase

import (
	"errors"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/registry"
)

// --- fakes shared by the use case tests ---

type fakeInputs struct {
	inputs map[int]string
	loads  map[int]int
}

func newFakeInputs(inputs map[int]string) *fakeInputs {
	return &fakeInputs{inputs: inputs, loads: map[int]int{}}
}

func (f *fakeInputs) LoadInput(day int) (string, error) {
	f.loads[day]++
	in, ok := f.inputs[day]
	if !ok {
		return "", &domain.OpError{
			Op:   "inputfs.load",
			Kind: domain.KindInputNotFound,
			Err:  errors.New("did you forget to add the input?"),
		}
	}
	return in, nil
}

type fakeAnswers struct {
	answers domain.Answers
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeAnswers) Load() (domain.Answers, error) {
	if f.loadErr != nil {
		return domain.Answers{}, f.loadErr
	}
	if f.answers == nil {
		return domain.Answers{}, &domain.OpError{Op: "answerstore.load", Kind: domain.KindNotFound, Err: domain.ErrNoAnswers}
	}
	return f.answers, nil
}

func (f *fakeAnswers) Save(entries []domain.Entry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	if f.answers == nil {
		f.answers = domain.Answers{}
	}
	f.answers = f.answers.Merge(entries)
	return nil
}

type fakeHistory struct {
	runs []domain.RunReport
	err  error
}

func (f *fakeHistory) SaveRun(run domain.RunReport) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.runs = append(f.runs, run)
	return "run-1", nil
}

// constant returns a solver that always answers v.
func constant(v int) registry.PartFunc {
	return func(string) (domain.Solution, error) { return domain.Int(v), nil }
}

// echoLen answers the input length, to prove the input reached the solver.
func echoLen(in string) (domain.Solution, error) { return domain.Int(len(in)), nil }

func newTestRegistry() *registry.Registry {
	r := registry.New()
	r.MustRegister(1, constant(42), constant(100))
	r.MustRegister(2, echoLen, constant(7))
	r.MustRegister(3, constant(3), constant(33))
	return r
}
