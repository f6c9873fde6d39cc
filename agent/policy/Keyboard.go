package policy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samuelfneumann/gopursuit/environment/pursuit"
	"github.com/samuelfneumann/gopursuit/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// ErrNoInput is returned by a Keyboard policy once its input has been
// exhausted
var ErrNoInput = errors.New("keyboard: no more input")

// Keyboard implements a policy which reads one integer action per line
// from an input stream, such as a terminal. If a prompt writer is
// given, the hunter's observation is written to it before each read.
//
// Several Keyboards may read from the same *bufio.Reader, in which case
// they take turns consuming its lines.
type Keyboard struct {
	name   string
	in     *bufio.Reader
	prompt io.Writer
}

// NewKeyboard returns a new Keyboard policy reading actions from in. If
// prompt is nil, no prompt is written.
func NewKeyboard(name string, in io.Reader, prompt io.Writer) *Keyboard {
	return &Keyboard{
		name:   name,
		in:     bufio.NewReader(in),
		prompt: prompt,
	}
}

// SelectAction reads the next action. Blank lines are skipped, lines
// which are not an action of the action table are reported and read
// again.
func (k *Keyboard) SelectAction(obs mat.Matrix) (int, error) {
	k.printf("%v\n%v action: ", matutils.Format(obs), k.name)

	for {
		line, err := k.in.ReadString('\n')
		line = strings.TrimSpace(line)

		if line != "" {
			action, convErr := strconv.Atoi(line)
			if convErr == nil && pursuit.Action(action).Valid() {
				return action, nil
			}
			k.printf("not an action %q, %v action [%d, %d]: ", line, k.name,
				pursuit.MinDiscreteAction, pursuit.MaxDiscreteAction)
		}

		if errors.Is(err, io.EOF) {
			return 0, ErrNoInput
		} else if err != nil {
			return 0, fmt.Errorf("keyboard: %w", err)
		}
	}
}

func (k *Keyboard) printf(format string, a ...interface{}) {
	if k.prompt != nil {
		fmt.Fprintf(k.prompt, format, a...)
	}
}
