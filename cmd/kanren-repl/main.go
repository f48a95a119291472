// Binary kanren-repl is an interactive shell over a fixed menu of demo
// relational queries.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	log "github.com/golang/glog"

	kanren "github.com/kanrenlab/gokanren/pkg/minikanren"
)

var defaultLimit = flag.Int("limit", 10, "number of answers to print for the fives query; the other queries print every answer")

type demo struct {
	name string
	help string
	run  func(limit int) []kanren.Answer
}

var demos = []demo{
	{
		name: "andgate",
		help: "run_all(|x,y| and(x,y,x)) over the 4-row AND-gate table",
		run: func(limit int) []kanren.Answer {
			return kanren.RunAll2(func(x, y Term) kanren.Goal { return andGate(x, y, x) })
		},
	},
	{
		name: "append",
		help: "run_all(|x,y| fresh(|r| eq(r, [1 2 3 4]), append(x,y,r)))",
		run: func(limit int) []kanren.Answer {
			return kanren.RunAll2(func(x, y Term) kanren.Goal {
				return kanren.Fresh1(func(r Term) kanren.Goal {
					return kanren.Both(
						kanren.Eq(r, kanren.List(kanren.Value(1), kanren.Value(2), kanren.Value(3), kanren.Value(4))),
						kanren.Appendo(x, y, r),
					)
				})
			})
		},
	},
	{
		name: "fives",
		help: "run(n, |x| fives(x)), a productive co-recursive relation",
		run: func(limit int) []kanren.Answer {
			var fives func(x Term) kanren.Goal
			fives = func(x Term) kanren.Goal {
				return kanren.Either(kanren.Eq(x, kanren.Value(5)), kanren.Yield(func() kanren.Goal { return fives(x) }))
			}
			return kanren.Run1(limit, fives)
		},
	},
	{
		name: "disequality",
		help: "run_all(|q| fresh(|x| neq(5,q), eq(x,q), neq(6,x)))",
		run: func(limit int) []kanren.Answer {
			return kanren.RunAll1(func(q Term) kanren.Goal {
				return kanren.Fresh1(func(x Term) kanren.Goal {
					return kanren.All(kanren.Neq(kanren.Value(5), q), kanren.Eq(x, q), kanren.Neq(kanren.Value(6), x))
				})
			})
		},
	},
}

// Term is a local alias so the demo table above reads like user code
// against the public package, without repeating the import name.
type Term = kanren.Term

func andGate(a, b, o Term) kanren.Goal {
	return kanren.Cond(
		[]kanren.Goal{kanren.Eq(a, kanren.Value(0)), kanren.Eq(b, kanren.Value(0)), kanren.Eq(o, kanren.Value(0))},
		[]kanren.Goal{kanren.Eq(a, kanren.Value(0)), kanren.Eq(b, kanren.Value(1)), kanren.Eq(o, kanren.Value(0))},
		[]kanren.Goal{kanren.Eq(a, kanren.Value(1)), kanren.Eq(b, kanren.Value(0)), kanren.Eq(o, kanren.Value(0))},
		[]kanren.Goal{kanren.Eq(a, kanren.Value(1)), kanren.Eq(b, kanren.Value(1)), kanren.Eq(o, kanren.Value(1))},
	)
}

func printMenu() {
	fmt.Println("available queries:")
	for _, d := range demos {
		fmt.Printf("  %-12s %s\n", d.name, d.help)
	}
	fmt.Println("  quit         exit")
}

func main() {
	flag.Parse()

	rl, err := readline.New("kanren> ")
	if err != nil {
		log.Fatalf("readline init failed: %v", err)
	}
	defer rl.Close()

	printMenu()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		cmd := strings.TrimSpace(line)
		switch cmd {
		case "":
			continue
		case "quit", "exit":
			return
		case "help", "?":
			printMenu()
			continue
		}

		found := false
		for _, d := range demos {
			if d.name != cmd {
				continue
			}
			found = true
			for _, a := range d.run(*defaultLimit) {
				fmt.Println(kanren.RenderAnswer(a))
			}
		}
		if !found {
			fmt.Printf("unknown query %q\n", cmd)
			printMenu()
		}
	}
}
