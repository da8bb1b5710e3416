package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matt-g-everett/styletx/api"
	"github.com/matt-g-everett/styletx/stream"
	"github.com/matt-g-everett/styletx/tween"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Registry   *prometheus.Registry
	Metrics    *stream.Metrics
	Surface    *stream.Surface
	Controller *stream.Controller
	Commander  *stream.Commander
}

func newApp(config stream.Config) (*app, error) {
	addon, err := stream.NewAddon(config.Addon)
	if err != nil {
		return nil, err
	}

	a := new(app)
	a.Config = config
	a.Registry = prometheus.NewRegistry()
	a.Metrics = stream.NewMetrics(a.Registry)

	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID(fmt.Sprintf("%s-%s", config.Mqtt.ClientID, uuid.NewString()[:8])).
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	a.Surface = stream.NewSurface(config.Element.Name, tween.StyleMap(config.Element.Style))
	streamer := stream.NewStreamer(a.Surface, a.Client, config.Mqtt.Topics.Style, config.Mqtt.Qos, a.Metrics)
	loop := tween.NewFrameLoop(nil, config.Frame.Rate)
	a.Controller = stream.NewController(streamer, loop, addon, a.Metrics)
	a.Commander = stream.NewCommander(a.Controller, a.Client, config.Mqtt.Topics.Command, config.Mqtt.Qos)

	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Commander.Subscribe(); err != nil {
		log.Println(err)
	}
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect %s: %w", a.Config.Mqtt.URL, token.Error())
	}
	defer a.Client.Disconnect(250)

	go func() {
		server := api.NewApi(a.Controller, a.Surface, a.Registry)
		if err := server.Serve(a.Config.HTTP.Addr); err != nil {
			log.Printf("HTTP server: %v", err)
		}
	}()

	if a.Config.Startup != nil {
		res, err := a.Controller.Animate(*a.Config.Startup)
		if err != nil {
			return fmt.Errorf("startup animation: %w", err)
		}
		log.Printf("Startup animation %s scheduled", res.ID)
	}

	err := a.Controller.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "styletx",
		Short:         "styletx tweens an element's style and streams it over MQTT",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := stream.LoadConfig(configPath)
			if err != nil {
				return err
			}
			log.Printf("Config: element=%s broker=%s addon=%s", config.Element.Name, config.Mqtt.URL, config.Addon)

			a, err := newApp(config)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "YAML config file.")
	return cmd
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
