package cmds

import "os"

// GlobalExecutor holds the commands defined by package init functions.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against GlobalExecutor, exiting the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(2)
	}
}
