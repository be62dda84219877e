// Package config provides local configuration for the grove CLI.
//
// Configuration lives in a single file, by default .grove/config.json in the
// working directory. A path ending in .yaml or .yml is handled as YAML:
//
//	{
//	  "theme": "dark",
//	  "enumerator": "rounded",
//	  "markdown_style": "dark",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "workers": 8,
//	  "operations": 1000
//	}
//
// String values can reference environment variables using $VAR or ${VAR}
// syntax:
//
//	{
//	  "log_level": "${GROVE_LOG_LEVEL}"
//	}
//
// A missing file is not an error; the defaults apply until `grove config
// init` writes one.
//
// Example usage:
//
//	manager := config.NewManager(config.DefaultPath("."))
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := manager.Get()
//	fmt.Println("Workers:", cfg.Workers)
//
//	// Update a setting
//	manager.Set("enumerator", "default")
package config
