// Package hostvideo is the SDL2 framebuffer presenter: a streaming
// texture showing the video coprocessor's 640x480 RGBA framebuffer at the
// emulated refresh rate, plus the keyboard/mouse event pump that feeds
// internal/input.
package hostvideo

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"nitro65/internal/input"
	"nitro65/internal/video"
)

// Presenter owns the SDL2 window, renderer, and streaming texture the
// emulator's framebuffer is blitted into once per frame.
type Presenter struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	scale    int
}

// NewPresenter opens an SDL2 window sized to the framebuffer at the given
// integer scale.
func NewPresenter(title string, scale int) (*Presenter, error) {
	if scale < 1 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("hostvideo: sdl.Init: %w", err)
	}

	width := int32(video.ScreenWidth * scale)
	height := int32(video.ScreenHeight * scale)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("hostvideo: CreateWindow: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("hostvideo: CreateRenderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(video.ScreenWidth), int32(video.ScreenHeight))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("hostvideo: CreateTexture: %w", err)
	}

	return &Presenter{window: window, renderer: renderer, texture: texture, scale: scale}, nil
}

// Present uploads one RGBA8888 framebuffer (video.Chip.Framebuffer's shape)
// to the streaming texture and blits it scaled to fill the window.
func (p *Presenter) Present(fb []uint8) error {
	if err := p.texture.Update(nil, fb, video.ScreenWidth*4); err != nil {
		return fmt.Errorf("hostvideo: texture update: %w", err)
	}
	p.renderer.Clear()
	if err := p.renderer.Copy(p.texture, nil, nil); err != nil {
		return fmt.Errorf("hostvideo: texture copy: %w", err)
	}
	p.renderer.Present()
	return nil
}

// PumpEvents drains the SDL event queue, translating keyboard/mouse events
// into PS/2 scancodes/packets on kbd/mouse, and reports whether the user
// asked to quit.
func (p *Presenter) PumpEvents(kbd *input.Keyboard, mouse *input.Mouse) bool {
	for {
		event := sdl.PollEvent()
		if event == nil {
			return false
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if kbd == nil {
				continue
			}
			code, ok := scancodeTable[e.Keysym.Scancode]
			if !ok {
				continue
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_UP, sdl.SCANCODE_DOWN, sdl.SCANCODE_LEFT, sdl.SCANCODE_RIGHT:
				kbd.PushScancode(0xE0) // set-2 extended-key prefix
			}
			if e.State == sdl.RELEASED {
				kbd.PushScancode(0xF0)
			}
			kbd.PushScancode(code)
		case *sdl.MouseMotionEvent:
			if mouse != nil {
				mouse.Move(int(e.XRel), int(e.YRel))
			}
		case *sdl.MouseButtonEvent:
			if mouse == nil {
				continue
			}
			pressed := e.State == sdl.PRESSED
			switch e.Button {
			case sdl.BUTTON_LEFT:
				mouse.SetButton(0, pressed)
			case sdl.BUTTON_RIGHT:
				mouse.SetButton(1, pressed)
			case sdl.BUTTON_MIDDLE:
				mouse.SetButton(2, pressed)
			}
		}
	}
}

// Close releases the SDL2 window/renderer/texture.
func (p *Presenter) Close() {
	p.texture.Destroy()
	p.renderer.Destroy()
	p.window.Destroy()
	sdl.Quit()
}
