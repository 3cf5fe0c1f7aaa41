package overlay

import (
	"path/filepath"
	"testing"
)

func Test_inputParser_guessOutput(t *testing.T) {
	type args struct {
		in  string
		ext string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"layout of a fasta", args{filepath.Join("input", "HBA_HUMAN.fa"), ".output.json"}, filepath.Join("input", "HBA_HUMAN.output.json")},
		{"plot of a fasta", args{"HBA_HUMAN.fasta", ".svg"}, "HBA_HUMAN.svg"},
		{"sequence passed directly", args{"", ".output.json"}, "pepoverlay.output.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &inputParser{}
			if got := p.guessOutput(tt.args.in, tt.args.ext); got != tt.want {
				t.Errorf("inputParser.guessOutput() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_parsePeptideArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate args", []string{"ABC", "BCD"}, "ABC,BCD"},
		{"already comma separated", []string{"ABC,BCD"}, "ABC,BCD"},
		{"not trimmed", []string{"ABC, BCD"}, "ABC, BCD"},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parsePeptideArgs(tt.args); got != tt.want {
				t.Errorf("parsePeptideArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFlags(t *testing.T) {
	fasta := filepath.Join("..", "..", "test", "input", "HBA_HUMAN.fa")

	flags, err := NewFlags("", "ABCDEFGH", "ABC", nil, "out.json")
	if err != nil {
		t.Fatal(err)
	}
	if flags.seq != "ABCDEFGH" || flags.name != "sequence" {
		t.Errorf("NewFlags() seq = %s name = %s", flags.seq, flags.name)
	}

	flags, err = NewFlags(fasta, "", "VLSPADK", nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(flags.seq) != 142 || flags.name != "sp|P69905|HBA_HUMAN" {
		t.Errorf("NewFlags() read %s with %d residues", flags.name, len(flags.seq))
	}

	if _, err = NewFlags(filepath.Join("..", "..", "test", "input", "missing.fa"), "", "ABC", nil, ""); err == nil {
		t.Error("NewFlags() with a missing FASTA, want error")
	}
}
