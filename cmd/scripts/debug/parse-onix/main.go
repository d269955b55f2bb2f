package main

import (
	"fmt"
	"os"

	"github.com/binderyapp/bindery/pkg/onix"
	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

func main() {
	log := logger.New()

	var opts struct {
		Source bool `short:"s" long:"source" description:"Only print the detected sender name"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if len(args) != 1 {
		fmt.Println("go run ./cmd/scripts/debug/parse-onix <path/to/file.xml>")
		os.Exit(1)
	}

	result, err := onix.ParseFile(args[0])
	if err != nil {
		log.Err(err).Fatal("onix parse error")
	}

	if opts.Source {
		fmt.Println(result.Source)
		return
	}

	fmt.Printf("Source: %s\nProducts: %d\n", result.Source, len(result.Books))
	data, err := json.MarshalIndent(result.Books, "", "  ")
	if err != nil {
		log.Err(err).Fatal("json marshal error")
	}
	fmt.Println(string(data))
}
