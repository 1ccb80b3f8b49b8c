package main

import (
	"fmt"
	"os"

	"fjacquet/smart-benefit/cmd/cards"
	"fjacquet/smart-benefit/cmd/compare"
	"fjacquet/smart-benefit/cmd/extract"
	"fjacquet/smart-benefit/cmd/root"
	"fjacquet/smart-benefit/cmd/suggest"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(cards.Cmd)
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
}

func main() {
	root.Cmd.SetArgs(root.NormalizeArgs(os.Args[1:]))
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
