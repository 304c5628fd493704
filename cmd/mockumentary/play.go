package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toejough/mockumentary/fixture"
	"github.com/toejough/mockumentary/internal/core"
)

func newPlayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play FILE MOCK ATTRIBUTE",
		Short: "Build a mock from a fixture file and call one of its attributes",
		Long: `Build a mock from a fixture file and call one of its attributes.

Methods are called --calls times (default: once more than the length of
their sequence, to show the wrap-around). Properties are printed once.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd, args[0], args[1], args[2])
		},
	}

	cmd.Flags().Int("calls", 0, "number of calls to make (0 = sequence length + 1)")
	cmd.Flags().StringSlice("arg", nil, "argument passed on every call (repeatable)")
	_ = a.cfg.BindPFlag("calls", cmd.Flags().Lookup("calls"))

	return cmd
}

func (a *app) play(cmd *cobra.Command, path, name, attr string) error {
	file, err := fixture.Load(path)
	if err != nil {
		return err
	}

	descriptors, err := file.Descriptors(name)
	if err != nil {
		return err
	}

	mock, err := core.NewFactory(descriptors, core.WithName(name), core.WithLogger(a.logger)).New()
	if err != nil {
		return err
	}

	out := a.printer(cmd)

	if mock.Kind(attr) == core.KindLiteral {
		out.row(attr, core.KindLiteral.String(), fmt.Sprint(mock.Prop(attr)))

		return nil
	}

	rawArgs, err := cmd.Flags().GetStringSlice("arg")
	if err != nil {
		return err
	}

	args := make([]any, len(rawArgs))
	for i, arg := range rawArgs {
		args[i] = arg
	}

	calls := a.cfg.GetInt("calls")
	if calls <= 0 {
		values, _ := file.Mocks[name].Returns(attr)
		calls = len(values) + 1
	}

	label := attr + "(" + strings.Join(rawArgs, ", ") + ")"

	for call := 1; call <= calls; call++ {
		results, err := mock.Invoke(attr, args...)
		if err != nil {
			return err
		}

		a.logger.Debug("called", slog.String("mock", mock.String()), slog.String("attribute", attr), slog.Int("call", call))
		out.row(fmt.Sprintf("%d", call), label, fmt.Sprint(results...))
	}

	return nil
}
