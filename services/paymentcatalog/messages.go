package paymentcatalog

import (
	"context"
	"fmt"

	"github.com/commercekit/paymentcore/lib/mylog"
)

type staticMessageProvider struct{}

// NewStaticMessageProvider returns built-in english mismatch messages for
// deployments without a translation service.
func NewStaticMessageProvider() MessageProvider {
	return staticMessageProvider{}
}

func (p staticMessageProvider) GetGeographiesErrorMsg(c context.Context, methodName string) (string, error) {
	return fmt.Sprintf("%s is not available in your country", methodName), nil
}

func (p staticMessageProvider) GetCurrenciesErrorMsg(c context.Context, methodName string) (string, error) {
	return fmt.Sprintf("%s does not support this currency", methodName), nil
}

func (p staticMessageProvider) GetAmountErrorMsg(c context.Context, methodName string) (string, error) {
	return fmt.Sprintf("order total is outside the range %s accepts", methodName), nil
}

type logNotifier struct {
	logger mylog.Logger
}

// NewLogNotifier writes mismatch messages to the log only, for headless
// deployments without a shopper-facing channel.
func NewLogNotifier() Notifier {
	return logNotifier{logger: mylog.New("eligibility")}
}

func (n logNotifier) Notify(c context.Context, methodName string, message string) {
	n.logger.Log(c, methodName, mylog.SeverityInfo, "Method %s not eligible: %s", methodName, message)
}
