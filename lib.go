package exprtree

import (
	"bufio"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/exprtree/statik"
)

//go:generate statik -src=lib -f

// Example is one expression of the embedded library.
type Example struct {
	Name   string
	Doc    string
	Tokens []string
	// Want is the expected result: an integer, or "error: " followed by
	// the expected error text.
	Want string
}

// LoadLib returns the examples bundled from lib/, sorted by name.
func LoadLib() ([]*Example, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var examples []*Example
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".expr" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		ex, err := readExample(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		ex.Name = strings.TrimSuffix(fi.Name(), ".expr")
		examples = append(examples, ex)
	}
	sort.Slice(examples, func(i, j int) bool {
		return examples[i].Name < examples[j].Name
	})
	return examples, nil
}

// readExample reads "# key: value" header lines followed by a line of
// whitespace separated tokens.
func readExample(r io.Reader) (*Example, error) {
	ex := &Example{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			kv := strings.SplitN(strings.TrimSpace(line[1:]), ":", 2)
			if len(kv) != 2 {
				continue
			}
			v := strings.TrimSpace(kv[1])
			switch strings.TrimSpace(kv[0]) {
			case "doc":
				ex.Doc = v
			case "want":
				ex.Want = v
			}
			continue
		}
		ex.Tokens = append(ex.Tokens, strings.Fields(line)...)
	}
	return ex, scanner.Err()
}
