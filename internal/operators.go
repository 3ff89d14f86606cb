package internal

type operatorApply func(left, right float64) (float64, error)

var binaryOperators = map[tokenType]operatorApply{
	tkPlus: func(left, right float64) (float64, error) {
		return left + right, nil
	},
	tkMinus: func(left, right float64) (float64, error) {
		return left - right, nil
	},
	tkStar: func(left, right float64) (float64, error) {
		return left * right, nil
	},
	tkSlash: func(left, right float64) (float64, error) {
		if right == 0 {
			return 0, errDivisionByZero
		}
		return left / right, nil
	},
	tkEqualEqual: func(left, right float64) (float64, error) {
		return boolToNumber(left == right), nil
	},
	tkBangEqual: func(left, right float64) (float64, error) {
		return boolToNumber(left != right), nil
	},
	tkGreater: func(left, right float64) (float64, error) {
		return boolToNumber(left > right), nil
	},
	tkGreaterEqual: func(left, right float64) (float64, error) {
		return boolToNumber(left >= right), nil
	},
	tkLess: func(left, right float64) (float64, error) {
		return boolToNumber(left < right), nil
	},
	tkLessEqual: func(left, right float64) (float64, error) {
		return boolToNumber(left <= right), nil
	},
}
