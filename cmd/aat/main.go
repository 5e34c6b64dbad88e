package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/aatree"
	"github.com/vancomm/aatree/internal/config"
)

var (
	log = logrus.New()

	size int
	seed uint64
)

func init() {
	const (
		defaultSize = 1_000_000
		usage       = "number of keys to exercise"
	)
	flag.IntVar(&size, "n", defaultSize, usage)
	flag.IntVar(&size, "keys", defaultSize, usage+" (long form)")
}

// item is the record the driver threads through its trees: an integer
// key and the container hook, nothing else.
type item struct {
	hook aatree.Hook[item]
	key  int
}

func (it *item) String() string {
	return strconv.Itoa(it.key)
}

func compareItems(x, y *item) int {
	if x.key < y.key {
		return -1
	}
	if x.key > y.key {
		return 1
	}
	return 0
}

func hookOf(it *item) *aatree.Hook[item] {
	return &it.hook
}

func newTree() *aatree.Tree[item] {
	return aatree.New(compareItems, hookOf)
}

func setupLogging() {
	level := logrus.InfoLevel
	if s := config.LogLevel(); s != "" {
		l, err := logrus.ParseLevel(s)
		if err != nil {
			log.Fatalf("unable to parse log level %q: %s", s, err)
		}
		level = l
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	aatree.Log.SetLevel(level)

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Level:      logrus.DebugLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
		aatree.Log.AddHook(hook)
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()
	setupLogging()

	seed = config.Seed()
	log.Infof("SEED=%d", seed)

	switch flag.Arg(0) {
	case "bench":
		runBench(size)
	case "dot":
		if err := runDot(os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	case "check", "":
		if err := runCheck(mainCtx); err != nil {
			log.Fatal(err)
		}
		log.Info("PASSED")
	default:
		log.Fatalf("unknown command %q (want bench, check or dot)", flag.Arg(0))
	}
}
