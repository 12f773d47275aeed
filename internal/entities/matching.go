package entities

// FitsCourier проверяет, подходит ли незанятый заказ курьеру:
// регион заказа входит в регионы курьера, вес не превышает потолок
// грузоподъемности, и хотя бы одно окно доставки строго пересекается
// хотя бы с одним рабочим интервалом.
func FitsCourier(courier *Courier, maxWeight float64, order *Order) bool {
	if order.IsAssigned {
		return false
	}
	return SuitsCourier(courier, maxWeight, order)
}

// SuitsCourier - тот же предикат без проверки занятости, для переоценки
// уже назначенных заказов после смены профиля курьера.
func SuitsCourier(courier *Courier, maxWeight float64, order *Order) bool {
	if order.Weight > maxWeight {
		return false
	}

	inRegion := false
	for _, region := range courier.Regions {
		if region == order.Region {
			inRegion = true
			break
		}
	}
	if !inRegion {
		return false
	}

	for _, working := range courier.WorkingHours {
		for _, window := range order.DeliveryHours {
			if working.Overlaps(window) {
				return true
			}
		}
	}
	return false
}
