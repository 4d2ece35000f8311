package nn

import (
	"fmt"
	"math"
)

// Activation is a scalar activation function paired with its derivative.
//
// Derivative is evaluated on the activated output y = Function(x), not on
// the pre-activation x. The backward pass only keeps activated values, so
// every derivative here is written in closed form in terms of y.
//
// Example:
//
//	act := nn.Sigmoid()
//	y := act.Function(0.3)
//	dy := act.Derivative(y)
type Activation struct {
	Name       string
	Function   func(x float64) float64
	Derivative func(y float64) float64
}

// Validate reports whether both functions are set.
func (a Activation) Validate() error {
	if a.Function == nil || a.Derivative == nil {
		return fmt.Errorf("%w: %q has a nil function", ErrActivation, a.Name)
	}
	return nil
}

// String returns the activation name.
func (a Activation) String() string {
	return a.Name
}

// Sigmoid returns the logistic activation.
//
//	f(x)  = 1 / (1 + e^-x)
//	f'(y) = y * (1 - y)
func Sigmoid() Activation {
	return Activation{
		Name: "sigmoid",
		Function: func(x float64) float64 {
			return 1 / (1 + math.Exp(-x))
		},
		Derivative: func(y float64) float64 {
			return y * (1 - y)
		},
	}
}

// Tanh returns the hyperbolic tangent activation.
//
//	f(x)  = tanh(x)
//	f'(y) = 1 - y²
func Tanh() Activation {
	return Activation{
		Name:     "tanh",
		Function: math.Tanh,
		Derivative: func(y float64) float64 {
			return 1 - y*y
		},
	}
}

// ReLU returns the rectified linear activation.
//
//	f(x)  = max(0, x)
//	f'(y) = 1 if y > 0, else 0
func ReLU() Activation {
	return Activation{
		Name: "relu",
		Function: func(x float64) float64 {
			return math.Max(0, x)
		},
		Derivative: func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return 0
		},
	}
}

// LeakyReLU returns a rectifier with slope alpha for negative inputs.
// The derivative is recoverable from y only for alpha > 0.
//
//	f(x)  = x if x > 0, else alpha * x
//	f'(y) = 1 if y > 0, else alpha
func LeakyReLU(alpha float64) Activation {
	return Activation{
		Name: fmt.Sprintf("leaky_relu(%g)", alpha),
		Function: func(x float64) float64 {
			if x > 0 {
				return x
			}
			return alpha * x
		},
		Derivative: func(y float64) float64 {
			if y > 0 {
				return 1
			}
			return alpha
		},
	}
}

// Linear returns the identity activation.
func Linear() Activation {
	return Activation{
		Name: "linear",
		Function: func(x float64) float64 {
			return x
		},
		Derivative: func(float64) float64 {
			return 1
		},
	}
}

// ActivationByName looks up a built-in activation by name:
// "sigmoid", "tanh", "relu", "leaky_relu" (alpha 0.01) or "linear".
func ActivationByName(name string) (Activation, error) {
	switch name {
	case "sigmoid":
		return Sigmoid(), nil
	case "tanh":
		return Tanh(), nil
	case "relu":
		return ReLU(), nil
	case "leaky_relu":
		return LeakyReLU(0.01), nil
	case "linear":
		return Linear(), nil
	default:
		return Activation{}, fmt.Errorf("%w: unknown name %q", ErrActivation, name)
	}
}
