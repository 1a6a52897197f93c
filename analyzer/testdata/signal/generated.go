// Code generated by hand. DO NOT EDIT.

package signal

import (
	"os"
	"os/signal"
)

func generated() {
	c := make(chan os.Signal, 1)
	signal.Notify(c)
}
