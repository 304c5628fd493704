package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toejough/mockumentary/fixture"
	"github.com/toejough/mockumentary/internal/core"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the mocks in a fixture file and their attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(cmd, args[0])
		},
	}
}

func (a *app) inspect(cmd *cobra.Command, path string) error {
	file, err := fixture.Load(path)
	if err != nil {
		return err
	}

	catalog, err := file.Catalog(core.WithLogger(a.logger))
	if err != nil {
		return err
	}

	out := a.printer(cmd)

	for _, name := range catalog.Names() {
		factory, _ := catalog.Lookup(name)

		mock, err := factory.New()
		if err != nil {
			return err
		}

		out.heading(name)

		for _, key := range mock.Keys() {
			kind := mock.Kind(key)

			var detail any
			if kind == core.KindLiteral {
				detail = mock.Prop(key)
			} else {
				detail, _ = file.Mocks[name].Returns(key)
			}

			out.row(key, kind.String(), fmt.Sprint(detail))
		}
	}

	return nil
}
