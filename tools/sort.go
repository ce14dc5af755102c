package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/navijation/njheap/util"
	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type heapSortArgs[T any] struct {
	Capacity int
	Limit    int
	Compare  func(a, b T) int
	Parse    func(line string) (T, error)
	Format   func(T) string
}

type heapSortResult struct {
	Read     int
	Skipped  int
	Capacity int
}

func sortStdin(_ context.Context, cmd *cli.Command) error {
	if err := configureLogger(cmd.String("log-level")); err != nil {
		return err
	}
	if cmd.Args().Len() != 0 {
		return errors.New("usage: sort [--max] [--numeric] [--limit N] [--capacity N] < values")
	}

	result, err := sortLines(os.Stdin, os.Stdout, sortOptions{
		Max:      cmd.Bool("max"),
		Numeric:  cmd.Bool("numeric"),
		Capacity: int(cmd.Uint("capacity")),
		Limit:    int(cmd.Uint("limit")),
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"read":     result.Read,
		"skipped":  result.Skipped,
		"capacity": result.Capacity,
	}).Info("sorted values")
	return nil
}

type sortOptions struct {
	Max      bool
	Numeric  bool
	Capacity int
	// Limit keeps only the first Limit values when positive.
	Limit int
}

func sortLines(in io.Reader, out io.Writer, opts sortOptions) (heapSortResult, error) {
	if opts.Numeric {
		args := heapSortArgs[float64]{
			Capacity: opts.Capacity,
			Limit:    opts.Limit,
			Compare:  cmp.Compare[float64],
			Parse: func(line string) (float64, error) {
				return strconv.ParseFloat(strings.TrimSpace(line), 64)
			},
			Format: func(v float64) string {
				return strconv.FormatFloat(v, 'g', -1, 64)
			},
		}
		if opts.Max {
			return heapSort[float64, heap.Max](in, out, args)
		}
		return heapSort[float64, heap.Min](in, out, args)
	}

	args := heapSortArgs[string]{
		Capacity: opts.Capacity,
		Limit:    opts.Limit,
		Compare:  strings.Compare,
		Parse:    func(line string) (string, error) { return line, nil },
		Format:   func(v string) string { return v },
	}
	if opts.Max {
		return heapSort[string, heap.Max](in, out, args)
	}
	return heapSort[string, heap.Min](in, out, args)
}

// heapSort pushes every parsable line of in and writes them back to out in
// heap order, stopping after args.Limit values when it is positive. Lines that
// fail to parse are skipped.
func heapSort[T any, D heap.Direction](
	in io.Reader, out io.Writer, args heapSortArgs[T],
) (result heapSortResult, _ error) {
	h, err := heap.New[T, D](heap.Args[T]{
		Compare:  args.Compare,
		Capacity: util.Some(args.Capacity),
	})
	if err != nil {
		return result, errors.Wrap(err, "failed to create heap")
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		value, err := args.Parse(line)
		if err != nil {
			logger.WithError(err).Warnf("skipping line %q", line)
			result.Skipped++
			continue
		}

		logger.Debugf("push %q", line)
		h.Push(value)
		result.Read++
	}
	if err := scanner.Err(); err != nil {
		return result, errors.Wrap(err, "failed to read input")
	}

	result.Capacity = h.Cap()

	var values []T
	if args.Limit > 0 {
		values = util.SeqTake(h.Drain(), args.Limit)
	} else {
		values = slices.Collect(h.Drain())
	}

	writer := bufio.NewWriter(out)
	for _, value := range values {
		if _, err := fmt.Fprintln(writer, args.Format(value)); err != nil {
			return result, errors.Wrap(err, "failed to write output")
		}
	}
	return result, errors.Wrap(writer.Flush(), "failed to write output")
}
