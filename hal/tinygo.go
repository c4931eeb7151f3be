//go:build tinygo

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

// Pico wiring: SSD1306 on I2C0 (SDA GP8 / SCL GP9, address 0x3C), piezo on
// GP3, button to ground on GP2.
const (
	oledSDA   = machine.GP8
	oledSCL   = machine.GP9
	oledAddr  = 0x3C
	buzzerPin = machine.GP3
	buttonPin = machine.GP2

	oledWidth  = 128
	oledHeight = 64
)

type deviceHAL struct {
	logger *uartLogger
	disp   Display
	buz    Buzzer
	btn    *pinButton
	t      *deviceTime
}

// New returns the device HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	btnPin := buttonPin
	btnPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	return &deviceHAL{
		logger: &uartLogger{uart: uart},
		disp:   newOLEDDisplay(),
		buz:    newPWMBuzzer(buzzerPin),
		btn:    &pinButton{pin: btnPin},
		t:      &deviceTime{start: time.Now()},
	}
}

func (h *deviceHAL) Logger() Logger   { return h.logger }
func (h *deviceHAL) Display() Display { return h.disp }
func (h *deviceHAL) Buzzer() Buzzer   { return h.buz }
func (h *deviceHAL) Button() Button   { return h.btn }
func (h *deviceHAL) Time() Time       { return h.t }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type oledDisplay struct {
	dev ssd1306.Device
}

func newOLEDDisplay() Display {
	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       oledSDA,
		SCL:       oledSCL,
		Frequency: 400_000,
	})
	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{
		Width:   oledWidth,
		Height:  oledHeight,
		Address: oledAddr,
	})
	dev.ClearDisplay()
	return &oledDisplay{dev: dev}
}

func (d *oledDisplay) Size() (int, int) { return oledWidth, oledHeight }

func (d *oledDisplay) SetPixel(x, y int, on bool) {
	c := color.RGBA{A: 255}
	if on {
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	d.dev.SetPixel(int16(x), int16(y), c)
}

func (d *oledDisplay) Clear() { d.dev.ClearBuffer() }

func (d *oledDisplay) Present() error { return d.dev.Display() }

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	SetPeriod(period uint64) error
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

// pwmBuzzer drives the piezo with a 50% duty square; the tone is the PWM
// period itself.
type pwmBuzzer struct {
	pwm pwmDevice
	ch  uint8
}

func newPWMBuzzer(pin machine.Pin) Buzzer {
	pwm := pwmForPin(pin)
	if pwm == nil {
		return nullBuzzer{}
	}
	if err := pwm.Configure(machine.PWMConfig{Period: uint64(1e9) / 440}); err != nil {
		return nullBuzzer{}
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nullBuzzer{}
	}
	pwm.Set(ch, 0)
	pwm.Enable(true)
	return &pwmBuzzer{pwm: pwm, ch: ch}
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

func (b *pwmBuzzer) SetTone(freqHz uint16) error {
	if freqHz == 0 {
		b.pwm.Set(b.ch, 0)
		return nil
	}
	if err := b.pwm.SetPeriod(uint64(1e9) / uint64(freqHz)); err != nil {
		return err
	}
	b.pwm.Set(b.ch, b.pwm.Top()/2)
	return nil
}

func (b *pwmBuzzer) Stop() error { return b.SetTone(0) }

type nullBuzzer struct{}

func (nullBuzzer) SetTone(uint16) error { return nil }
func (nullBuzzer) Stop() error          { return nil }

// pinButton is active low (pull-up to 3V3, button to ground).
type pinButton struct {
	pin machine.Pin
}

func (b *pinButton) Pressed() bool { return !b.pin.Get() }

type deviceTime struct {
	start time.Time
}

func (t *deviceTime) Millis() uint64 {
	return uint64(time.Since(t.start) / time.Millisecond)
}
