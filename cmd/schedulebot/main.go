// Command schedulebot serves class schedules over Telegram.
package main

import (
	"log"

	corecmd "github.com/m3rciful/schedulebot/core/cmd"
	"github.com/m3rciful/schedulebot/bot"
)

func main() {
	if err := corecmd.Run(corecmd.Options{
		LoadConfig: bot.Load,
		Bootstrap:  bot.Bootstrap,
	}); err != nil {
		log.Fatal(err)
	}
}
