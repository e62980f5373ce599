// Package ui is the tcell front end: it draws session views and turns
// terminal key presses into key.Event values.
package ui
