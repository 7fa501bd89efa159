// quill-ast inspects and caches encoded quill trees.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/quill-lang/quill/ast"
	"github.com/quill-lang/quill/ast/asthash"
	"github.com/quill-lang/quill/astcache"
	"github.com/quill-lang/quill/astwire"
	"github.com/quill-lang/quill/manifest"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	cachePath := flag.String("cache", "", "Cache database path (default from quill.toml)")
	store := flag.Bool("store", false, "Store the given tree files in the cache")
	dump := flag.String("dump", "", "Dump the cached tree with the given digest")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: quill-ast [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Inspects wire-encoded quill trees and manages the compiled-tree cache.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quill-ast module.qast             # Print digest and outline\n")
		fmt.Fprintf(os.Stderr, "  quill-ast -store module.qast      # Store in the project cache\n")
		fmt.Fprintf(os.Stderr, "  quill-ast -dump <digest>          # Dump a cached tree\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("quill-ast")

	path := *cachePath
	if path == "" {
		m, err := manifest.FindAndLoad(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading quill.toml: %v\n", err)
			os.Exit(1)
		}
		if m != nil {
			path = m.CachePath()
			log.Infof("using cache from quill.toml: %s", path)
		}
	}

	if *dump != "" {
		if path == "" {
			fmt.Fprintf(os.Stderr, "Error: -dump requires a cache (use -cache or a quill.toml)\n")
			os.Exit(1)
		}
		if err := dumpCached(path, *dump); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var cache *astcache.Cache
	if *store {
		if path == "" {
			fmt.Fprintf(os.Stderr, "Error: -store requires a cache (use -cache or a quill.toml)\n")
			os.Exit(1)
		}
		var err error
		if cache, err = astcache.Open(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer cache.Close()
	}

	for _, file := range files {
		node, err := loadTree(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		digest := asthash.HexSum(node)
		fmt.Printf("%s  %s\n", digest, file)
		if *store {
			if _, err := cache.Put(node); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			log.Infof("stored %s", digest)
		} else {
			printOutline(node, 0)
		}
	}
}

func loadTree(file string) (ast.Node, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return astwire.Unmarshal(data)
}

func dumpCached(cachePath, digest string) error {
	cache, err := astcache.Open(cachePath)
	if err != nil {
		return err
	}
	defer cache.Close()

	node, err := cache.Get(digest)
	if err != nil {
		return err
	}
	printOutline(node, 0)
	return nil
}

func printOutline(node ast.Node, depth int) {
	fmt.Printf("%s%s%s\n", strings.Repeat("  ", depth), ast.Kind(node), describe(node))
	for _, child := range node.ChildNodes() {
		printOutline(child, depth+1)
	}
}

// describe adds the attribute a reader most wants to see per kind.
func describe(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Identifier:
		return fmt.Sprintf(" %s", n.Value())
	case *ast.TargetIdentifier:
		if n.Rebind() {
			return fmt.Sprintf(" %s (rebind)", n.Value())
		}
		return fmt.Sprintf(" %s", n.Value())
	case *ast.Value:
		return fmt.Sprintf(" %v", n.Value())
	case *ast.ExprBinary:
		return fmt.Sprintf(" %s", n.Operator())
	case *ast.ExprUnary:
		return fmt.Sprintf(" %s", n.Operator())
	case *ast.Assignment:
		return fmt.Sprintf(" %s", n.Operator())
	case *ast.Attribute, *ast.TargetAttribute:
		return fmt.Sprintf(" .%s", node.(interface{ Name() string }).Name())
	case *ast.Keyword:
		return fmt.Sprintf(" %s=", n.Name())
	case *ast.FunctionSignature:
		return fmt.Sprintf(" %s", n.Name())
	case *ast.MacroLiteral, *ast.MacroArgument:
		return fmt.Sprintf(" %s", node.(interface{ Value() string }).Value())
	case *ast.Interpolation:
		return fmt.Sprintf(" %s", n.Converter())
	default:
		return ""
	}
}
