package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/color-operators/internal/cli"
	"github.com/ironsheep/color-operators/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(cli.ExitUsage)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("colorops %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		printHelp()
		return
	}

	// Logging goes to stderr; stdout carries results or the MCP protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("COLOROPS_LOG_LEVEL") == "debug" {
		log.Printf("colorops v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if os.Args[1] == "serve" {
		srv := server.New(Version)
		if err := srv.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

func printHelp() {
	fmt.Println("colorops - convert and combine RGB, HSL and HSV colors")
	fmt.Println()
	fmt.Println("Usage: colorops <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, name := range cli.CommandNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("  serve            Run as an MCP server over stdin/stdout")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Run 'colorops <command> -help' for the options of a command.")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  COLOROPS_LOG_LEVEL=debug    Enable debug logging")
}
