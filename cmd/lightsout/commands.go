package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lightsout/board"
	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/inversion"
	"github.com/katalvlaran/lightsout/server"
	"github.com/katalvlaran/lightsout/worker"
)

func newRootCmd() *cobra.Command {
	var logLevel string
	rootCmd := &cobra.Command{
		Use:   "lightsout",
		Short: "GF(2) linear algebra for the Lights Out puzzle",
		Long: `lightsout inverts, analyses and solves Lights Out boards.
Every command prints the JSON envelope the HTTP server would return.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.InitLogger(cmd.ErrOrStderr(), logLevel)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "debug, info, warn or error")

	rootCmd.AddCommand(
		newProductCmd(),
		newNCmd(worker.KindPattern, "pattern N", "Periodicity of identity shapes for width N", true),
		newNCmd(worker.KindSolvability, "solvability N", "Solvability report for the N×N board", false),
		newNCmd(worker.KindIdentity, "identity MAX", "Shapes up to MAX×MAX whose combined operator is the identity", false),
		newNCmd(worker.KindGodsNumber, "gods-number N", "Most presses any solvable N×N board needs", false),
		newNCmd(worker.KindVerify, "verify N", "Check the width-N pattern against direct evaluation", true),
		newSolveCmd(),
		newServeCmd(),
	)

	return rootCmd
}

// dispatch runs req in-process and prints its envelope.
func dispatch(cmd *cobra.Command, req worker.Request) error {
	resp := worker.NewDispatcher(worker.WithConcurrency(1)).Do(cmd.Context(), req)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return err
	}
	if !resp.Success {
		return errors.New(resp.Error)
	}

	return nil
}

func parseN(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", arg, err)
	}

	return n, nil
}

func newNCmd(kind worker.Kind, use, short string, withLimit bool) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseN(args[0])
			if err != nil {
				return err
			}
			return dispatch(cmd, worker.Request{Kind: kind, N: n, Limit: limit})
		},
	}
	if withLimit {
		cmd.Flags().IntVar(&limit, "limit", 0, "iteration or height limit (0 = default)")
	}

	return cmd
}

func newProductCmd() *cobra.Command {
	var rows, cols int
	cmd := &cobra.Command{
		Use:   "product BITS",
		Short: "Top-row presses that clear a chased last row, e.g. product --rows 3 --cols 3 100",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseBits(args[0])
			if err != nil {
				return err
			}
			if cols == 0 {
				cols = len(input)
			}
			if rows == 0 {
				rows = cols
			}
			return dispatch(cmd, worker.Request{Kind: worker.KindProduct, Rows: rows, Cols: cols, Input: input})
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "board rows (default cols)")
	cmd.Flags().IntVar(&cols, "cols", 0, "board columns (default len(BITS))")

	return cmd
}

func parseBits(s string) ([]int, error) {
	out := make([]int, len(s))
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			out[i] = 1
		default:
			return nil, fmt.Errorf("invalid bit %q in %q", r, s)
		}
	}

	return out, nil
}

func newSolveCmd() *cobra.Command {
	var (
		rows, cols int
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "solve [ROW...]",
		Short: "Solve a board given as rows of bits, or a random one",
		Long: `solve prints the presses that clear a board. Rows are given as bit
strings, e.g. "solve 010 000 010". Without rows a random solvable board of
--rows × --cols is drawn.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([][]int, 0, len(args))
			for _, a := range args {
				row, err := parseBits(a)
				if err != nil {
					return err
				}
				values = append(values, row)
			}
			if len(values) == 0 {
				if seed == 0 {
					seed = time.Now().UnixNano()
				}
				b, err := board.Randomize(rows, cols, rand.New(rand.NewSource(seed)))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), b)
				values = b.Values()
			}
			return dispatch(cmd, worker.Request{Kind: worker.KindSolve, Board: values})
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 5, "random board rows")
	cmd.Flags().IntVar(&cols, "cols", 5, "random board columns")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		addr        string
		concurrency int
		maxSize     int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the job protocol over HTTP and websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if concurrency < 1 || maxSize < 1 {
				return errors.New("--concurrency and --max-size must be >= 1")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			cache := inversion.New(inversion.WithMetrics(inversion.NewMetrics(reg)))
			d := worker.NewDispatcher(
				worker.WithCache(cache),
				worker.WithConcurrency(concurrency),
				worker.WithMaxSize(maxSize),
				worker.WithMetrics(worker.NewMetrics(reg)),
			)

			return server.New(d, server.WithAddr(addr), server.WithGatherer(reg)).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "jobs computed at once")
	cmd.Flags().IntVar(&maxSize, "max-size", worker.DefaultMaxSize, "largest board side or N accepted")

	return cmd
}
