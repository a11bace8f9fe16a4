package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/axiomhq/lzw"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var version = "dev"

// Cli holds the lzwpack command line.
type Cli struct {
	Version kong.VersionFlag

	LogLevel   string `kong:"name=log-level,env=LOG_LEVEL,default=info,help='Set log level.'"`
	LogJSON    bool   `kong:"name=log-json,env=LOG_JSON,default=false,help='Enable JSON logging output.'"`
	LogNoColor bool   `kong:"name=log-nocolor,env=LOG_NOCOLOR,default=false,help='Disable colorized output.'"`

	Decode bool   `kong:"name=decode,short=d,default=false,help='Decode instead of encode.'"`
	Codec  string `kong:"name=codec,short=c,default=uri,enum='string,binary,uri,utf16',help='Alphabet pair: string, binary, uri or utf16.'"`
}

func main() {
	var cli Cli
	_ = kong.Parse(&cli,
		kong.Name("lzwpack"),
		kong.Description("Compress data into restricted character sets with alphabet-generic LZW. More info: https://github.com/axiomhq/lzw"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	configureLogging(cli)

	if err := run(cli, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("lzwpack failed")
	}
}

// run reads everything from in, encodes or decodes it through the selected
// codec, and writes the result to out.
func run(cli Cli, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	log.Debug().Int("bytes", len(data)).Str("codec", cli.Codec).Bool("decode", cli.Decode).Msg("input read")

	var result []byte
	if cli.Codec == "binary" {
		codec := lzw.BinaryToBinary()
		if cli.Decode {
			result, err = codec.DecodeBytes(data)
		} else {
			result, err = codec.EncodeBytes(data)
		}
	} else {
		var codec *lzw.Codec
		switch cli.Codec {
		case "string":
			codec = lzw.StringToString()
		case "utf16":
			codec = lzw.StringToUTF16()
		default:
			codec = lzw.StringToURI()
		}
		var s string
		if cli.Decode {
			s, err = codec.DecodeString(string(data))
		} else {
			s, err = codec.EncodeString(string(data))
		}
		result = []byte(s)
	}
	if err != nil {
		return errors.Wrapf(err, "%s codec", cli.Codec)
	}
	log.Debug().Int("bytes", len(result)).Msg("codec pass done")

	if _, err := out.Write(result); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}
