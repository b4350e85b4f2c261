package main

import "testing"

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "find"},
		{"version long flag", []string{"--version"}, "version"},
		{"version word", []string{"version"}, "version"},
		{"help word", []string{"help"}, "help"},
		{"help short flag", []string{"-h"}, "help"},
		{"help long flag", []string{"--help"}, "help"},
		{"version filter short flag", []string{"-v", "17"}, "find"},
		{"version filter long flag", []string{"--version=17"}, "find"},
		{"detailed flag", []string{"-d"}, "find"},
		{"explicit find", []string{"find", "-d"}, "find"},
		{"select", []string{"select"}, "select"},
		{"add-path", []string{"add-path", "/opt/java"}, "add-path"},
		{"unknown verb", []string{"doctor"}, "doctor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commandFor(tt.args); got != tt.want {
				t.Errorf("commandFor(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestStartUpdateCheckSkipsScriptedCommands(t *testing.T) {
	for _, command := range []string{"find", "update"} {
		t.Run(command, func(t *testing.T) {
			notify := startUpdateCheck(command)
			if msg, ok := <-notify; ok {
				t.Errorf("startUpdateCheck(%q) produced notification %q, want closed channel", command, msg)
			}
		})
	}
}
