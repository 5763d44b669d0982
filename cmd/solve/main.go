// Command solve generates a random scramble, finds an alternative move
// sequence reaching the same scrambled state, and prints both. See spec
// section 6's solver CLI contract.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/guth0/HalfScramble/cube"
	"github.com/guth0/HalfScramble/pdb"
	"github.com/guth0/HalfScramble/scramble"
	"github.com/guth0/HalfScramble/search"
)

func main() {
	log.SetFlags(log.LstdFlags)

	app := cli.NewApp()
	app.Name = "solve"
	app.Usage = "rewrite a random scramble as an alternative move sequence"
	app.ArgsUsage = "scramble_len"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "render",
			Usage: "print the cube net before and after solving",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: solve scramble_len", 2)
	}

	n, err := strconv.Atoi(c.Args().Get(0))
	if err != nil || n < 0 {
		return cli.NewExitError("solve: scramble_len must be a non-negative integer", 2)
	}

	pdbs, err := pdb.OpenCanonical()
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "solve: loading pattern databases").Error(), 1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	scrambleMoves := scramble.Generate(n, rng)

	scrambled := cube.NewSolved()
	for _, m := range scrambleMoves {
		scrambled.ApplyMove(m)
	}

	if c.Bool("render") {
		log.Printf("scrambled cube:\n%s", scrambled.Render())
	}

	forbiddenFirst := cube.Move{}
	if len(scrambleMoves) > 0 {
		forbiddenFirst = scramble.Invert(scrambleMoves[len(scrambleMoves)-1])
	}

	path, found, err := search.Solve(&scrambled, forbiddenFirst, pdbs, n, search.Options{
		Progress: func(threshold int) {
			log.Printf("threshold: %d", threshold)
		},
	})
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "solve: search").Error(), 1)
	}
	if !found {
		return cli.NewExitError("solve: no solution found within the search's threshold ceiling", 1)
	}

	fmt.Println("Scramble: " + scramble.FormatSequence(scrambleMoves))
	fmt.Println("Solution: " + scramble.FormatSequence(path))

	if c.Bool("render") {
		solved := scrambled
		for _, m := range path {
			solved.ApplyMove(m)
		}
		log.Printf("solved cube:\n%s", solved.Render())
	}

	return nil
}
