package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Wa4h1h/tftp-packet/internal/dump"
	"github.com/Wa4h1h/tftp-packet/internal/utils"
)

var (
	tftpPort       = utils.GetEnv[string]("TFTP_PORT", "69")
	logLevel       = utils.GetEnv[string]("LOG_LEVEL", "debug")
	payloadPreview = utils.GetEnv[uint]("PAYLOAD_PREVIEW", "32")
)

func main() {
	l := utils.NewLogger(logLevel)
	i := dump.NewInspector(l, tftpPort, payloadPreview)

	go func() {
		if err := i.ListenAndInspect(); err != nil {
			l.Error(err.Error())
		}
	}()

	l.Info(fmt.Sprintf("inspecting tftp datagrams on port %s", tftpPort))

	defer func() {
		if err := i.Close(); err != nil {
			panic(err)
		}

		l.Info(fmt.Sprintf("closed listener on port %s", tftpPort))
	}()

	// listen shutdown signal
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan
}
