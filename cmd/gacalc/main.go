// Gacalc is an REPL for evaluating geometric algebra expressions: basis
// blades, multivector arithmetic, and the named operations (exp, inv,
// dual, sandwich, join, ...) of the ga package.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"

	"dasa.cc/ga/ga"
	"dasa.cc/ga/internal/trigram"

	"github.com/chzyer/readline"
)

var (
	flagP = flag.Int("p", 3, "count of +1 diagonal metric entries")
	flagQ = flag.Int("q", 0, "count of -1 diagonal metric entries")
	flagR = flag.Int("r", 0, "count of 0 diagonal metric entries")
)

// auto completes on basis labels, bound variable names and function
// names, scored by trigram overlap against the partial
// line the way cmd/gpl completes template identifiers.
type auto struct {
	trigram.Set
}

var funcNames = []string{
	"exp", "inv", "normalize", "rev", "invol", "dual", "hodge",
	"length", "norm", "sandwich", "symm", "join", "rotor",
}

func newauto(a *ga.Ga, e *env) *auto {
	t := &auto{}
	for label := range a.Basis {
		t.Index(label)
	}
	for _, f := range funcNames {
		t.Index(f)
	}
	for name := range e.vars {
		t.Index(name)
	}
	return t
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (a auto) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	ln := string(line[:pos])
	pos = 0
	p, n := a.Match(ln, 0.33)

	sort.Slice(p, func(i, j int) bool {
		return !strings.HasPrefix(p[j], ln) && strings.HasPrefix(p[i], ln)
	})

	for i, s := range p {
		t := strings.TrimPrefix(s, ln)
		d := len(s) - len(t)
		n[i] = float64(d)
		pos = max(pos, d)
		newLine = append(newLine, []rune(t))
	}

	return newLine, pos
}

func main() {
	flag.Parse()

	a, err := ga.New(ga.WithSignature(*flagP, *flagQ, *flagR))
	if err != nil {
		log.Fatal(err)
	}
	e := newEnv(a)

	tmp, err := ioutil.TempFile("", "gacalc")
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(tmp.Name())

	ac := newauto(a, e)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "gacalc: ",
		HistoryFile:       tmp.Name(),
		AutoComplete:      ac,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	log.SetFlags(0)
	log.SetOutput(rl.Stderr())
	log.Printf("%v geometric algebra G(%d,%d,%d), basis: %v", runtime.Version(), a.P, a.Q, a.R, basisLabels(a))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		mv, name, err := e.eval(line)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "%v\n", err)
			continue
		}
		if name != "" {
			ac.Index(name)
			fmt.Fprintf(rl.Stderr(), "%s = %v\n", name, mv)
		} else {
			fmt.Fprintf(rl.Stderr(), "%v\n", mv)
		}
	}
}

func basisLabels(a *ga.Ga) []string {
	out := make([]string, len(a.BasisInOrder))
	for i, b := range a.BasisInOrder {
		out[i] = b.Basis
	}
	return out
}
