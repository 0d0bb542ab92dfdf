// wsp2p: two-pole saturation vapor pressure of water
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/wsp2p-go/wsp2p"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// コマンドライン引数の処理
	parser := argparse.NewParser("wsp2p", "Saturation vapor pressure of liquid/supercooled water from a two-pole fit, with closed-form inverse and derived humidity quantities")

	temp := parser.FloatPositional(&argparse.Options{
		Default: 20.0,
		Help:    "Temperature [degC]"})

	mode := parser.Selector("m", "mode", []string{"esat", "inverse", "rh", "dewpoint", "q", "table"}, &argparse.Options{
		Default: "esat",
		Help:    "Quantity to compute"})

	vaporPres := parser.Float("e", "vapor_pressure", &argparse.Options{
		Default: 6.112103132923173,
		Help:    "Vapor pressure [hPa] (modes: inverse, rh)"})

	rh := parser.Float("r", "rh", &argparse.Options{
		Default: 50.0,
		Help:    "Relative humidity [%] (modes: dewpoint, q)"})

	pres := parser.Float("p", "pressure", &argparse.Options{
		Default: 1013.25,
		Help:    "Total pressure [hPa] (mode: q)"})

	tMin := parser.Float("", "tmin", &argparse.Options{
		Default: -40.0,
		Help:    "Table start temperature [degC] (mode: table)"})

	tMax := parser.Float("", "tmax", &argparse.Options{
		Default: 100.0,
		Help:    "Table end temperature [degC] (mode: table)"})

	step := parser.Float("", "step", &argparse.Options{
		Default: 1.0,
		Help:    "Table step [degC] (mode: table)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (default: stdout)"})

	logLevel := parser.Selector("", "log", []string{"debug", "info", "warn", "error", "critical"}, &argparse.Options{
		Default: "info",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("wsp2p")
	if *logLevel == "debug" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "info" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "warn" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "error" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "critical" {
		logger.SetLevel(logging.LevelCritical)
	}

	// 係数の読み込み (設定エラーは即時終了)
	coef, err := wsp2p.LoadCoefficients()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	f, err := wsp2p.NewFormulation(coef)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	if *mode == "table" {
		tbl, err := f.BuildSatTable(*tMin, *tMax, *step)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		tbl.ToCSV(buf)
	} else {
		var v float64
		if *mode == "esat" {
			v = f.EsatWaterHpa(*temp)
		} else if *mode == "inverse" {
			v = f.TFromEWater(*vaporPres)
		} else if *mode == "rh" {
			v = f.RHPercent(*temp, *vaporPres)
		} else if *mode == "dewpoint" {
			v = f.DewpointCFromTRH(*temp, *rh)
		} else if *mode == "q" {
			v = f.SpecificHumidityKgPerKg(*temp, *rh, *pres)
		}
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		buf.WriteString("\n")
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("saving: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}
}
