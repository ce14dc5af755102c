package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/navijation/njheap/probability"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func binomial(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 3 {
		return errors.New("usage: binomial n x p")
	}

	n, err := strconv.Atoi(cmd.Args().Get(0))
	if err != nil {
		return errors.Wrapf(err, "invalid n %q", cmd.Args().Get(0))
	}
	x, err := strconv.Atoi(cmd.Args().Get(1))
	if err != nil {
		return errors.Wrapf(err, "invalid x %q", cmd.Args().Get(1))
	}
	p, err := strconv.ParseFloat(cmd.Args().Get(2), 64)
	if err != nil {
		return errors.Wrapf(err, "invalid p %q", cmd.Args().Get(2))
	}

	result, err := probability.BinomialProbability(n, x, p)
	if err != nil {
		return err
	}

	fmt.Println(strconv.FormatFloat(result, 'g', -1, 64))
	return nil
}

func combination(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return errors.New("usage: combination n k")
	}

	n, err := strconv.Atoi(cmd.Args().Get(0))
	if err != nil {
		return errors.Wrapf(err, "invalid n %q", cmd.Args().Get(0))
	}
	k, err := strconv.Atoi(cmd.Args().Get(1))
	if err != nil {
		return errors.Wrapf(err, "invalid k %q", cmd.Args().Get(1))
	}

	result, err := probability.Combination(n, k)
	if err != nil {
		return err
	}

	fmt.Println(strconv.FormatFloat(result, 'f', -1, 64))
	return nil
}
