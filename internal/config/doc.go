// Package config loads the trainer settings.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← applied by cmd/vex
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← VEX_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/vex/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// A missing config file is not an error. Unknown keys are.
//
// # Example
//
//	lessons_dir = "~/vex-lessons"
//	watch_lessons = true
//
//	[log]
//	file = "/tmp/vex.log"
//	level = "debug"
//	json = false
//
//	[ui]
//	theme = "light"
//	show_pending = true
package config
