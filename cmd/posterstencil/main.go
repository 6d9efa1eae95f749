// PosterStencil - business posters from frames and templates.
//
// Usage:
//
//	posterstencil render -o <file> --profile <path> [--frame id | --template id] [options]
//	posterstencil frames [--category c] [--bundle path]
//	posterstencil templates
//	posterstencil init
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "frames":
		err = runFrames(os.Args[2:])
	case "templates":
		err = runTemplates(os.Args[2:])
	case "init":
		err = runInit(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: render mode (all flags on root).
		err = runRender(os.Args[1:])
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`PosterStencil - Business Posters from Frames and Templates

USAGE:
    posterstencil render -o <file> --profile <path> [options]
    posterstencil frames [--category <c>] [--bundle <path>]
    posterstencil templates
    posterstencil init [options]

RENDER:
    -o, --output <path>     Output file (.png, .jpg or .jpeg)
    --profile <path>        Business profile YAML/JSON
    --frame <id>            Frame to apply (see 'frames')
    --template <id>         Template for the no-frame layout (see 'templates')
    --bundle <path>         Extra frames from a .gsframes bundle
    --background <path>     Poster art used without a frame
    --hide <keys>           Comma-separated fields to hide (e.g. phone,email)
    --width, --height <px>  Canvas size (default: 720 x 487.2)
    --screen <WxH>          Derive the canvas from a screen size instead
    --landscape             Screen is in landscape orientation
    --media <WxH>           Natural size of a video background
    --config <path>         Config YAML

EXAMPLES:
    posterstencil init
    posterstencil frames --category business
    posterstencil render -o poster.png --profile profile.yaml --template ocean
    posterstencil render -o poster.jpg --profile profile.yaml --frame business-classic
    posterstencil render -o story.png --profile profile.yaml --screen 1080x1920 --media 1080x1920
`)
}
