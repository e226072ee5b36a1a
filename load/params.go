package load

import (
	"net/url"

	"svm/types"
)

// 查询参数名称
const (
	KeyAlpha          = "alpha"
	KeyBeta           = "beta"
	KeyUdc            = "udc"
	KeyBoxSize        = "box"
	KeyShowPhases     = "phases"
	KeyShowSVM        = "svm"
	KeyOverModulation = "overmod"
)

// ParseQuery 在 base 基础上覆盖请求参数
func ParseQuery(values url.Values, base types.RenderParameters) (types.RenderParameters, error) {
	p := base
	var err error
	if values.Has(KeyAlpha) {
		if p.Vector.Alpha, err = ParseComponent(values.Get(KeyAlpha)); err != nil {
			return p, err
		}
	}
	if values.Has(KeyBeta) {
		if p.Vector.Beta, err = ParseComponent(values.Get(KeyBeta)); err != nil {
			return p, err
		}
	}
	if p.Udc, err = (Value{Value: values.Get(KeyUdc)}).ParsePositive(base.Udc); err != nil {
		return p, err
	}
	if p.BoxSizeVolts, err = (Value{Value: values.Get(KeyBoxSize)}).ParsePositive(base.BoxSizeVolts); err != nil {
		return p, err
	}
	p.ShowPhases = Value{Value: values.Get(KeyShowPhases)}.ParseBool(base.ShowPhases)
	p.ShowSVM = Value{Value: values.Get(KeyShowSVM)}.ParseBool(base.ShowSVM)
	if values.Has(KeyOverModulation) {
		if p.OverModulation, err = types.ParseOverModulationMode(values.Get(KeyOverModulation)); err != nil {
			return p, err
		}
	}
	return p, nil
}
