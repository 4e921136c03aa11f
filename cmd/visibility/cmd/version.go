package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the visibility CLI version and build time.",
		Usage: "visibility version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}
