// Command rle compresses and decompresses files in the .rle format.
//
// With no FILE, or when FILE is -, it reads standard input and writes
// standard output. Otherwise it writes FILE.rle (or strips the suffix
// when decoding) and removes the source file on success, like gzip.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytepack/rle"
	"github.com/mattn/go-isatty"
)

const suffix = ".rle"

var (
	toStdout   = flag.Bool("c", false, "write to standard output and do not delete input file")
	decompress = flag.Bool("d", false, "force decompression (decoding)")
	force      = flag.Bool("f", false, "force (file overwrite, output to a terminal, etc.)")
	keep       = flag.Bool("k", false, "keep (do not delete) input file")
	version    = flag.Bool("V", false, "display the version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [OPTION]... [FILE]\n"+
			"Compress or decompress FILE in the .rle format.\n"+
			"\n"+
			"  -c         write to standard output and do not delete input file\n"+
			"  -d         force decompression (decoding)\n"+
			"  -f         force (file overwrite, output to a terminal, etc.)\n"+
			"  -h         display this help and exit\n"+
			"  -k         keep (do not delete) input file\n"+
			"  -V         display the version and exit\n"+
			"\n"+
			"With no FILE, or when FILE is -, read standard input and write standard output.\n",
		os.Args[0])
}

// encodeName derives the compressed filename for name. A name that
// already carries the suffix is refused unless forced, to keep from
// compressing a file twice by accident.
func encodeName(name string, force bool) (string, error) {
	if !force && len(name) > len(suffix) && strings.HasSuffix(name, suffix) {
		return "", fmt.Errorf("%s: filename already has `%s' suffix", name, suffix)
	}
	return name + suffix, nil
}

// decodeName strips the suffix from a compressed filename.
func decodeName(name string) (string, error) {
	if len(name) <= len(suffix) || !strings.HasSuffix(name, suffix) {
		return "", fmt.Errorf("%s: filename has an unknown suffix", name)
	}
	return name[:len(name)-len(suffix)], nil
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("rle %s\n", rle.Version)
		return
	}

	if err := run(); err != nil {
		// The codec's errors already carry the "rle: " prefix.
		fmt.Fprintf(os.Stderr, "rle: %s\n", strings.TrimPrefix(err.Error(), "rle: "))
		os.Exit(1)
	}
}

func run() error {
	op := rle.Encode
	if *decompress {
		op = rle.Decode
	}

	fnin := "-"
	if flag.NArg() > 0 {
		fnin = flag.Arg(0)
	}

	var (
		fin, fout *os.File
		fnout     string
		keepInput = *keep
	)

	if fnin == "-" {
		fin = os.Stdin
		fout = os.Stdout
		keepInput = true
	} else {
		f, err := os.Open(fnin)
		if err != nil {
			return err
		}
		defer f.Close()
		fin = f
	}

	if fout == nil && *toStdout {
		fout = os.Stdout
		keepInput = true
	}

	if fout == nil {
		var err error
		if !*decompress {
			fnout, err = encodeName(fnin, *force)
		} else {
			fnout, err = decodeName(fnin)
		}
		if err != nil {
			return err
		}

		if *force {
			if err := os.Remove(fnout); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%s: can not remove: %v", fnout, err)
			}
		}

		f, err := os.OpenFile(fnout, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err != nil {
			return err
		}
		fout = f
	}

	if !*decompress && !*force && isatty.IsTerminal(fout.Fd()) {
		return errors.New("compressed data can not be written to a terminal")
	}

	if err := runOp(op, fin, fout); err != nil {
		return err
	}

	if !keepInput {
		fin.Close()
		if err := os.Remove(fnin); err != nil {
			return fmt.Errorf("%s: can not remove: %v", fnin, err)
		}
	}
	return nil
}

func runOp(op func(io.Writer, io.Reader) error, fin, fout *os.File) error {
	err := op(fout, fin)
	if fout != os.Stdout {
		if cerr := fout.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}
	return err
}
