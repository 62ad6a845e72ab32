package main

import (
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Job lifecycle and real-time dispatch service",
	Long: `marketplace runs the job dispatch API of the service marketplace:
job lifecycle, OTP settlement into worker wallets, the live location relay
and SafeTap panic routing. Configuration is read from the environment and
an optional .env file in the working directory.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
