package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/navijation/njheap/util"
	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type job struct {
	ID       uuid.UUID
	Priority int
	Label    string

	// arrival order, used to break priority ties
	sequence int
}

type queueArgs struct {
	Max      bool
	Capacity int
	NewID    func() uuid.UUID
}

func queueStdin(_ context.Context, cmd *cli.Command) error {
	if err := configureLogger(cmd.String("log-level")); err != nil {
		return err
	}
	if cmd.Args().Len() != 0 {
		return errors.New("usage: queue [--max] < jobs")
	}

	jobs, err := queueJobs(os.Stdin, os.Stdout, queueArgs{
		Max:      cmd.Bool("max"),
		Capacity: int(cmd.Uint("capacity")),
		NewID:    uuid.New,
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"jobs": jobs}).Info("queue drained")
	return nil
}

// queueJobs reads "priority: label" lines and writes "id priority label" lines
// in priority order. Jobs with equal priority are written in arrival order.
func queueJobs(in io.Reader, out io.Writer, args queueArgs) (count int, _ error) {
	if args.Max {
		// pick higher priorities first, and upon ties pick the earlier arrival
		return drainJobs[heap.Max](in, out, args, func(a, b job) int {
			if comparison := cmp.Compare(a.Priority, b.Priority); comparison != 0 {
				return comparison
			}
			return cmp.Compare(b.sequence, a.sequence)
		})
	}

	return drainJobs[heap.Min](in, out, args, func(a, b job) int {
		if comparison := cmp.Compare(a.Priority, b.Priority); comparison != 0 {
			return comparison
		}
		return cmp.Compare(a.sequence, b.sequence)
	})
}

func drainJobs[D heap.Direction](
	in io.Reader, out io.Writer, args queueArgs, compare func(a, b job) int,
) (count int, _ error) {
	jobs, err := heap.New[job, D](heap.Args[job]{
		Compare:  compare,
		Capacity: util.Some(args.Capacity),
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to create job queue")
	}

	scanner := bufio.NewScanner(in)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		entry, err := parseJob(scanner.Text())
		if err != nil {
			logger.WithError(err).Warnf("skipping line %d", lineNumber)
			continue
		}

		entry.ID = args.NewID()
		entry.sequence = lineNumber
		logger.WithFields(logrus.Fields{
			"id":       entry.ID.String(),
			"priority": entry.Priority,
		}).Debug("queued job")
		jobs.Push(entry)
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "failed to read jobs")
	}

	writer := bufio.NewWriter(out)
	for entry := range jobs.Drain() {
		if _, err := fmt.Fprintf(writer, "%s %d %s\n", entry.ID, entry.Priority, entry.Label); err != nil {
			return count, errors.Wrap(err, "failed to write jobs")
		}
		count++
	}
	return count, errors.Wrap(writer.Flush(), "failed to write jobs")
}

func parseJob(line string) (out job, _ error) {
	fragments := strings.SplitN(line, ":", 2)
	if len(fragments) != 2 {
		return out, errors.Errorf("job must be in \"priority: label\" format, got %q", line)
	}

	priority, err := strconv.Atoi(strings.TrimSpace(fragments[0]))
	if err != nil {
		return out, errors.Wrapf(err, "invalid priority %q", fragments[0])
	}

	return job{
		Priority: priority,
		Label:    strings.TrimSpace(fragments[1]),
	}, nil
}
