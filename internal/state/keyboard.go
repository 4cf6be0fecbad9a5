package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-car-shooter/internal/input"
)

// KeyBindings maps each intent to the keys that trigger it.
type KeyBindings struct {
	Accelerate []ebiten.Key
	Brake      []ebiten.Key
	TurnLeft   []ebiten.Key
	TurnRight  []ebiten.Key
	Fire       []ebiten.Key
	Restart    []ebiten.Key
	Quit       []ebiten.Key
}

func DefaultBindings() KeyBindings {
	return KeyBindings{
		Accelerate: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Brake:      []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		TurnLeft:   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		TurnRight:  []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Fire:       []ebiten.Key{ebiten.KeySpace},
		Restart:    []ebiten.Key{ebiten.KeyR},
		Quit:       []ebiten.Key{ebiten.KeyEscape},
	}
}

// Intent builds an intent from a key-state query.
func (b KeyBindings) Intent(pressed func(ebiten.Key) bool) input.Intent {
	return input.Intent{
		Accelerate: anyKey(b.Accelerate, pressed),
		Brake:      anyKey(b.Brake, pressed),
		TurnLeft:   anyKey(b.TurnLeft, pressed),
		TurnRight:  anyKey(b.TurnRight, pressed),
		Fire:       anyKey(b.Fire, pressed),
	}
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// KeyboardSource samples the ebiten keyboard. It must be used on the game loop goroutine.
type KeyboardSource struct {
	Bindings KeyBindings
}

func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{Bindings: DefaultBindings()}
}

// Sample возвращает текущие зажатые клавиши. Edge-логика выстрела живёт в симуляции.
func (k *KeyboardSource) Sample() input.Intent {
	return k.Bindings.Intent(ebiten.IsKeyPressed)
}

func (k *KeyboardSource) RestartPressed() bool {
	return anyKey(k.Bindings.Restart, inpututil.IsKeyJustPressed)
}

func (k *KeyboardSource) QuitPressed() bool {
	return anyKey(k.Bindings.Quit, inpututil.IsKeyJustPressed)
}
