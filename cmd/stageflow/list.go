package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/stageflow/stageflow/adaptor"
	"github.com/stageflow/stageflow/function"
)

func runList(args []string) error {
	flagset := baseFlagSet("list")
	flagset.Usage = usageFor(flagset, "stageflow list")
	if err := flagset.Parse(args); err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Adaptor", "Description"})
	for _, name := range adaptor.RegisteredAdaptors() {
		a, err := adaptor.GetAdaptor(name, adaptor.Config{})
		if err != nil {
			return err
		}
		description := ""
		if d, ok := a.(adaptor.Describable); ok {
			description = d.Description()
		}
		table.Append([]string{name, description})
	}
	table.Render()

	fmt.Println()
	table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Function"})
	for _, name := range function.RegisteredFunctions() {
		table.Append([]string{name})
	}
	table.Render()

	return nil
}
