// Package arima implements ARIMA(p,d,q) model estimation and forecasting.
//
// Models are estimated by conditional sum of squares: the series is
// differenced d times, AR starting values come from the Yule-Walker
// equations, and the coefficient vector is refined with a derivative-free
// Nelder-Mead search (with a quasi-Newton fallback). The intercept is held
// at the differenced-series mean.
//
//	model := arima.New(0, 2, 1)
//	if err := model.Fit(series); err != nil {
//	    var convErr *arima.ConvergenceError
//	    if errors.As(err, &convErr) {
//	        // retry with a different order
//	    }
//	}
//	residuals := model.Residuals()
//	forecasts, _ := model.Predict(5)
//
// A failed optimization surfaces as *ConvergenceError; the model never
// keeps partial coefficients. AIC, AICc, BIC and the Gaussian
// log-likelihood are available on the fitted model for order comparison.
package arima
