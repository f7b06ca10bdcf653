// Command killersudoku solves 9x9 sudoku puzzles with optional
// killer-style cage sum constraints. The puzzle comes from a file, a
// literal argument, or an OCR service via -img; with no argument a
// built-in demo puzzle is solved.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"killersudoku/internal/model"
	"killersudoku/internal/parse"
	"killersudoku/internal/render"
	"killersudoku/internal/solve"
	"killersudoku/internal/vision"
)

// hardest is the demo puzzle, Inkala's "world's hardest sudoku".
const hardest = `
+-------+-------+-------+
| 8 0 0 | 0 0 0 | 0 0 0 |
| 0 0 3 | 6 0 0 | 0 0 0 |
| 0 7 0 | 0 9 0 | 2 0 0 |
+-------+-------+-------+
| 0 5 0 | 0 0 7 | 0 0 0 |
| 0 0 0 | 0 4 5 | 7 0 0 |
| 0 0 0 | 1 0 0 | 0 3 0 |
+-------+-------+-------+
| 0 0 1 | 0 0 0 | 0 6 8 |
| 0 0 8 | 5 0 0 | 0 1 0 |
| 0 9 0 | 0 0 0 | 4 0 0 |
+-------+-------+-------+
`

func sudoku() int {
	st := time.Now()

	imgPath := flag.String("img", "", "image file containing the puzzle (needs VISION_ENDPOINT)")
	cagePath := flag.String("cages", "", "file with cage sum constraints, one CELL(+CELL)*=N per line")
	budget := flag.Int("budget", 0, "step budget for the search engine, 0 for unlimited")
	noSAT := flag.Bool("no-sat", false, "skip the SAT backend and always use the search engine")
	flag.Usage = flagUsage
	flag.Parse()

	// .env supplies VISION_ENDPOINT and SOLVER_BUDGET; absence is fine.
	_ = godotenv.Load()
	if *budget == 0 {
		if v := os.Getenv("SOLVER_BUDGET"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				printError(fmt.Errorf("SOLVER_BUDGET: %v", err))
				return 1
			}
			*budget = n
		}
	}

	text, err := puzzleText(*imgPath, flag.Args())
	if err != nil {
		printError(err)
		return 1
	}

	problem, err := parse.Puzzle(text)
	if err != nil {
		printError(err)
		return 1
	}
	fmt.Println("[Input problem]")
	fmt.Println(render.Grid(problem))

	var cages []parse.Cage
	if *cagePath != "" {
		raw, err := os.ReadFile(*cagePath)
		if err != nil {
			printError(err)
			return 1
		}
		fmt.Printf("[+] Applying constraints\n%s\n", raw)
		cages, err = parse.Cages(string(raw))
		if err != nil {
			printError(err)
			return 1
		}
	}

	set, err := model.Build(problem, cages)
	if err != nil {
		printError(err)
		return 1
	}

	sol, err := solve.Solve(set, solve.Options{MaxSteps: *budget, NoSAT: *noSAT})
	if err != nil {
		printError(err)
		return 1
	}
	if !sol.Solved {
		fmt.Println("Solved: false (unsatisfiable)")
		return 0
	}

	fmt.Printf("Solved: %v\n\n", model.Verify(sol.Cells, set))
	fmt.Print(render.OneLine(sol.Cells))
	cmp, err := render.SideBySide(problem, sol.Cells)
	if err != nil {
		printError(err)
		return 1
	}
	fmt.Println()
	fmt.Print(cmp)

	fmt.Println("Time: ", time.Since(st))
	return 0
}

// puzzleText resolves the puzzle source: the OCR service for -img, a
// file or literal string argument, or the built-in demo.
func puzzleText(imgPath string, args []string) (string, error) {
	if imgPath != "" {
		endpoint := os.Getenv("VISION_ENDPOINT")
		if endpoint == "" {
			return "", errors.New("-img needs VISION_ENDPOINT to be set")
		}
		fmt.Printf("[+] Extracting sudoku puzzle from: %s\n", imgPath)
		return vision.NewHTTPExtractor(endpoint).Extract(context.Background(), imgPath)
	}

	switch len(args) {
	case 0:
		return hardest, nil
	case 1:
		if raw, err := os.ReadFile(args[0]); err == nil {
			return string(raw), nil
		}
		return args[0], nil
	default:
		flagUsage()
		return "", errors.New("too many arguments")
	}
}

func flagUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %[1]s [flags] [problem-file-or-string]\n", os.Args[0])
	flag.PrintDefaults()
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, err.Error()+"\n")
}

func main() {
	os.Exit(sudoku())
}
