//go:build !tinygo

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"m401-bsp/board"
	"m401-bsp/gpio"
	"m401-bsp/internal/boardmap"
	"m401-bsp/internal/logging"
)

var pressed []string

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "List the board lines and where they are mapped",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMap()
		if err != nil {
			return err
		}
		hostLine := map[gpio.ID]string{}
		if m.Driver == boardmap.DriverPeriph {
			if hostLine, err = m.Resolve(); err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPIN\tHOST\tROLE")
		for _, l := range board.Wiring {
			host := hostLine[l.ID]
			if host == "" {
				host = "-"
			}
			fmt.Fprintf(w, "%s\tP%s\t%s\t%s\n", l.Name, l.ID, host, l.Role)
		}
		return w.Flush()
	},
}

var ledCmd = &cobra.Command{
	Use:       "led <red|green|blue> <on|off|toggle>",
	Short:     "Drive one LED",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"red", "green", "blue"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBoard(func(s *session) error {
			led, err := ledByName(s.Board, args[0])
			if err != nil {
				return err
			}
			switch args[1] {
			case "on":
				led.SetOn()
			case "off":
				led.SetOff()
			case "toggle":
				led.Toggle()
			default:
				return fmt.Errorf("unknown LED action %q", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], onOff(led.Output().Level()))
			return nil
		})
	},
}

var buttonsCmd = &cobra.Command{
	Use:   "buttons",
	Short: "Read the push-buttons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBoard(func(s *session) error {
			if err := press(s); err != nil {
				return err
			}
			for i, b := range s.Board.Buttons() {
				state := "released"
				if b.IsPushed() {
					state = "pushed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "pb%d: %s\n", i+1, state)
			}
			return nil
		})
	},
}

var rfswitchCmd = &cobra.Command{
	Use:       "rfswitch [rx|tx_lp|tx_hp]",
	Short:     "Set or show the RF front-end switch mode",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"rx", "tx_lp", "tx_hp"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBoard(func(s *session) error {
			if len(args) == 1 {
				m, err := board.ParseRfMode(args[0])
				if err != nil {
					return fmt.Errorf("rf mode %q: %w", args[0], err)
				}
				if err := s.Board.Rf.SetMode(m); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rf: %s\n", rfMode(s.Board.Rf))
			return nil
		})
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the LED, button and RF switch operations",
	Long: `Claims the board, exercises every peripheral once and frees it again.
On the simulator, --press marks buttons as held for the button step.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBoard(func(s *session) error {
			return runDemo(cmd, s)
		})
	},
}

func init() {
	buttonsCmd.Flags().StringSliceVar(&pressed, "press", nil, "simulator only: buttons to hold (pb1,pb2,pb3)")
	demoCmd.Flags().StringSliceVar(&pressed, "press", nil, "simulator only: buttons to hold (pb1,pb2,pb3)")
}

func runDemo(cmd *cobra.Command, s *session) error {
	out := cmd.OutOrStdout()
	log := logging.GetLogger()
	b := s.Board

	for i, l := range b.Leds() {
		l.SetOn()
		fmt.Fprintf(out, "led %d on\n", i+1)
		l.Toggle()
	}

	if err := press(s); err != nil {
		return err
	}
	leds := b.Leds()
	for i, btn := range b.Buttons() {
		if btn.IsPushed() {
			leds[i].SetOn()
			fmt.Fprintf(out, "pb%d pushed, led %d on\n", i+1, i+1)
		}
	}

	fmt.Fprintf(out, "rf power-on: %s\n", rfMode(b.Rf))
	for _, m := range []board.RfMode{board.RfTxLP, board.RfTxHP, board.RfRx} {
		if err := b.Rf.SetMode(m); err != nil {
			return err
		}
		log.Debug("rf switch", zap.Stringer("mode", m))
		fmt.Fprintf(out, "rf -> %s\n", rfMode(b.Rf))
	}

	for _, l := range b.Leds() {
		l.SetOff()
	}
	return nil
}

// press holds the --press buttons low on the simulator.
func press(s *session) error {
	if len(pressed) == 0 {
		return nil
	}
	if s.Sim == nil {
		return fmt.Errorf("--press needs the simulator driver")
	}
	for _, name := range pressed {
		name = strings.ToLower(name)
		id, ok := lineID(name)
		if !ok || !strings.HasPrefix(name, "pb") {
			return fmt.Errorf("unknown button %q", name)
		}
		s.Sim.Press(id)
	}
	return nil
}

func lineID(name string) (gpio.ID, bool) {
	for _, l := range board.Wiring {
		if l.Name == name {
			return l.ID, true
		}
	}
	return 0, false
}

type ledLine interface {
	board.Led
	board.OutputSource
}

func ledByName(b *board.Board, name string) (ledLine, error) {
	switch name {
	case "red":
		return b.Red, nil
	case "green":
		return b.Green, nil
	case "blue":
		return b.Blue, nil
	}
	return nil, fmt.Errorf("unknown LED %q", name)
}

func onOff(l gpio.Level) string {
	if l == gpio.High {
		return "on"
	}
	return "off"
}

func rfMode(rf *board.RfSwitch) string {
	m, ok := rf.Mode()
	if !ok {
		return "undefined"
	}
	return m.String()
}
