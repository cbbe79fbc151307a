// Command form drives the client half of the pipeline against a running api
// instance, printing the same notices a site visitor would see in a toast.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"fitlead/internal/config"
	"fitlead/internal/form"
	"fitlead/internal/logging"
)

func main() {
	name := flag.String("name", "", "visitor name")
	phone := flag.String("phone", "", "phone number, any formatting")
	direction := flag.String("direction", "", "interest category (optional)")
	flag.Parse()

	cfg := config.LoadForm()
	logging.Init("form", cfg.LogFormat)

	client := &form.Client{
		BaseURL: cfg.APIBaseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}

	f := form.New(client, cfg.ContactPhone)
	f.Name = *name
	f.SetPhone(*phone)
	f.Direction = *direction

	fmt.Printf("телефон: %s\n", f.Phone)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	notice := f.Submit(ctx)
	fmt.Println(notice.Text)
	if notice.Level != form.NoticeSuccess {
		os.Exit(1)
	}
}
