// Command bmpfile is a small driver for the bmp codec package: it probes,
// generates, converts and processes uncompressed BMP files from the shell.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/pixelkit/bmpfile/bmp"
	"github.com/pixelkit/bmpfile/internal/ops"
	"github.com/pixelkit/bmpfile/internal/pixbuf"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("bmpfile - load, save and inspect uncompressed BMP files")
	fmt.Println()
	fmt.Println("Usage: bmpfile <command> [options] <args>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  info <file.bmp>                 Print image properties as JSON")
	fmt.Println("  generate [options] <out.bmp>    Write a test-card image")
	fmt.Println("  convert <in> <out>              Convert to or from BMP by extension")
	fmt.Println("  process [options] <in> <out>    Apply image operations to a BMP")
	fmt.Println("  pixel <file.bmp> <x> <y>        Print the color at a pixel as JSON")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  BMPFILE_LOG_LEVEL=debug    Enable debug logging")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("bmpfile %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		usage()
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("BMPFILE_LOG_LEVEL") == "debug" {
		log.Printf("bmpfile v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "info":
		err = runInfo(args)
	case "generate":
		err = runGenerate(args)
	case "convert":
		err = runConvert(args)
	case "process":
		err = runProcess(args)
	case "pixel":
		err = runPixel(args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected one BMP file argument")
	}
	path := fs.Arg(0)

	props, res := bmp.LoadProperties(path)
	if !res.IsOK() {
		return fmt.Errorf("%s: %s", path, res)
	}

	out := struct {
		bmp.ImageProperties
		BufferSize int `json:"buffer_size"`
	}{props, bmp.ComputeBufferSize(props)}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	width := fs.Int("width", 640, "image width in pixels")
	height := fs.Int("height", 480, "image height in lines")
	mono := fs.Bool("mono", false, "write an 8-bit grayscale ramp instead of the color gradient")
	topDown := fs.Bool("top-down", false, "store the file top-down instead of bottom-up")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected one output file argument")
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	path := fs.Arg(0)

	var buffer []byte
	var props bmp.ImageProperties
	if *mono {
		buffer, props = pixbuf.Ramp(*width, *height)
	} else {
		buffer, props = pixbuf.Gradient(*width, *height)
	}

	if res := bmp.Save(path, buffer, props, bmp.SaveOptions{KeepTopDown: *topDown}); !res.IsOK() {
		return fmt.Errorf("%s: %s", path, res)
	}
	fmt.Printf("wrote %s (%dx%d %s)\n", path, *width, *height, props.PixelFormat)
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected input and output file arguments")
	}
	in, out := fs.Arg(0), fs.Arg(1)

	if isBMP(in) && !isBMP(out) {
		buffer, props, err := loadBMP(in)
		if err != nil {
			return err
		}
		img, err := pixbuf.ToImage(buffer, props)
		if err != nil {
			return err
		}
		return imaging.Save(img, out)
	}

	if !isBMP(in) && isBMP(out) {
		img, err := imaging.Open(in)
		if err != nil {
			return err
		}
		buffer, props, err := pixbuf.FromImage(img)
		if err != nil {
			return err
		}
		if res := bmp.Save(out, buffer, props, bmp.SaveOptions{}); !res.IsOK() {
			return fmt.Errorf("%s: %s", out, res)
		}
		return nil
	}
	return fmt.Errorf("exactly one of input and output must be a .bmp file")
}

func runProcess(args []string) error {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	crop := fs.String("crop", "", "crop to a named region, e.g. top-left or center")
	flipV := fs.Bool("flipv", false, "flip the image vertically")
	brightness := fs.Float64("brightness", 0, "brightness change, -1.0 to 1.0")
	contrast := fs.Float64("contrast", 0, "contrast change, -1.0 to 1.0")
	sharpen := fs.Float64("sharpen", 0, "sharpening strength")
	blurRadius := fs.Float64("blur", 0, "gaussian blur radius in pixels")
	resize := fs.String("resize", "", "resize to WIDTHxHEIGHT, e.g. 320x240")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected input and output BMP file arguments")
	}
	in, out := fs.Arg(0), fs.Arg(1)

	opts := ops.Options{
		CropRegion: *crop,
		FlipV:      *flipV,
		Brightness: *brightness,
		Contrast:   *contrast,
		Sharpen:    *sharpen,
		BlurRadius: *blurRadius,
	}
	if *resize != "" {
		if _, err := fmt.Sscanf(*resize, "%dx%d", &opts.ResizeWidth, &opts.ResizeHeight); err != nil ||
			opts.ResizeWidth <= 0 || opts.ResizeHeight <= 0 {
			return fmt.Errorf("invalid -resize value %q", *resize)
		}
	}

	buffer, props, err := loadBMP(in)
	if err != nil {
		return err
	}
	img, err := pixbuf.ToImage(buffer, props)
	if err != nil {
		return err
	}
	img, err = ops.Apply(img, opts)
	if err != nil {
		return err
	}

	outBuffer, outProps, err := pixbuf.FromImage(img)
	if err != nil {
		return err
	}
	if res := bmp.Save(out, outBuffer, outProps, bmp.SaveOptions{}); !res.IsOK() {
		return fmt.Errorf("%s: %s", out, res)
	}
	return nil
}

func runPixel(args []string) error {
	fs := flag.NewFlagSet("pixel", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("expected a BMP file and x y coordinates")
	}
	var x, y int
	if _, err := fmt.Sscanf(fs.Arg(1)+" "+fs.Arg(2), "%d %d", &x, &y); err != nil {
		return fmt.Errorf("coordinates must be integers")
	}

	buffer, props, err := loadBMP(fs.Arg(0))
	if err != nil {
		return err
	}
	img, err := pixbuf.ToImage(buffer, props)
	if err != nil {
		return err
	}
	sample, err := ops.SampleColor(img, x, y)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// loadBMP probes the file for its properties, sizes a buffer and decodes
// into it.
func loadBMP(path string) ([]byte, bmp.ImageProperties, error) {
	props, res := bmp.LoadProperties(path)
	if !res.IsOK() {
		return nil, props, fmt.Errorf("%s: %s", path, res)
	}
	buffer := make([]byte, bmp.ComputeBufferSize(props))
	if res := bmp.Load(path, buffer, &props, bmp.LoadOptions{}); !res.IsOK() {
		return nil, props, fmt.Errorf("%s: %s", path, res)
	}
	return buffer, props, nil
}

func isBMP(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".bmp")
}
