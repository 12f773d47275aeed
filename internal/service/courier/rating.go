package courier

import "math"

const maxDeliverySeconds = 3600

// computeRating переводит минимальное среднее время доставки по регионам
// в оценку 0..5: час и дольше - ноль, мгновенная доставка - пятерка.
// nil на входе значит, что завершенных заказов еще нет, рейтинга тоже нет.
func computeRating(minAvgSeconds *float64) *float64 {
	if minAvgSeconds == nil {
		return nil
	}

	t := math.Min(*minAvgSeconds, maxDeliverySeconds)
	rating := (maxDeliverySeconds - t) / maxDeliverySeconds * 5
	rating = math.Round(rating*100) / 100
	return &rating
}
