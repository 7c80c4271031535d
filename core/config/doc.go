// Package config provides configuration management for fxr-query.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
//   - Game: dump directory and optional profile override
//   - Output: report directory
//   - Scan: worker limit for the parallel source scan
//   - Log: logging level and format
//   - Database: optional run history (sqlite or MySQL)
//   - Storage: optional S3/MinIO report publishing
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Game.Directory)
package config
